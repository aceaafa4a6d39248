package cartControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AniketMankoo/DietHorizon/middleware"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm: %v", err)
	}
	return db, mock
}

func testRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
	})
	r.GET("/api/cart/summary", GetCartSummary(db))
	r.POST("/api/cart/add", AddToCart(db))
	r.PUT("/api/cart/items", UpdateCartItem(db))
	r.DELETE("/api/cart/:productId", RemoveCartItem(db))
	r.DELETE("/api/cart", ClearCart(db))
	return r
}

func TestAddToCart_InvalidInput(t *testing.T) {
	db, _ := setupTestDB(t)
	router := testRouter(db, "u1")

	for _, body := range []string{`{}`, `{"productId": 1}`, `{"productId": 1, "quantity": 0}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected status %d, got %d", body, http.StatusBadRequest, w.Code)
		}
	}
}

func TestAddToCart_ProductNotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	router := testRouter(db, "u1")

	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "stock"}))

	body := `{"productId": 99, "quantity": 1}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d (%s)", http.StatusNotFound, w.Code, w.Body.String())
	}
}

func TestAddToCart_InsufficientStock(t *testing.T) {
	db, mock := setupTestDB(t)
	router := testRouter(db, "u1")

	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "stock"}).
			AddRow(3, "Whey Protein", 19.99, 1))

	body := `{"productId": 3, "quantity": 2}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d (%s)", http.StatusBadRequest, w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Insufficient stock") {
		t.Errorf("Expected insufficient stock message, got %s", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Database expectations were not met: %v", err)
	}
}

// Summary with no cart is a zero-value success, not an error.
func TestGetCartSummary_NoCart(t *testing.T) {
	db, mock := setupTestDB(t)
	router := testRouter(db, "u1")

	mock.ExpectQuery(`SELECT (.+) FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "active"}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d (%s)", http.StatusOK, w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"count":0`) {
		t.Errorf("Expected zero count, got %s", w.Body.String())
	}
}

func TestGetCartSummary_WithItems(t *testing.T) {
	db, mock := setupTestDB(t)
	router := testRouter(db, "u1")

	mock.ExpectQuery(`SELECT (.+) FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "active"}).
			AddRow(7, "u1", true))
	mock.ExpectQuery(`SELECT (.+) FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "product_id", "quantity", "price"}).
			AddRow(1, 7, 3, 2, 19.99).
			AddRow(2, 7, 4, 1, 5.50))

	req := httptest.NewRequest(http.MethodGet, "/api/cart/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d (%s)", http.StatusOK, w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"count":3`) {
		t.Errorf("Expected count 3, got %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"totalPrice":45.48`) {
		t.Errorf("Expected total 45.48, got %s", w.Body.String())
	}
}

func TestRemoveCartItem_InvalidProductID(t *testing.T) {
	db, _ := setupTestDB(t)
	router := testRouter(db, "u1")

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d (%s)", http.StatusBadRequest, w.Code, w.Body.String())
	}
}

func TestUpdateCartItem_CartNotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	router := testRouter(db, "u1")

	mock.ExpectQuery(`SELECT (.+) FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "active"}))

	body := `{"productId": 3, "quantity": 2}`
	req := httptest.NewRequest(http.MethodPut, "/api/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d (%s)", http.StatusNotFound, w.Code, w.Body.String())
	}
}

// Clearing when no cart exists succeeds quietly.
func TestClearCart_NoCart(t *testing.T) {
	db, mock := setupTestDB(t)
	router := testRouter(db, "u1")

	mock.ExpectQuery(`SELECT (.+) FROM "carts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "active"}))

	req := httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d (%s)", http.StatusOK, w.Code, w.Body.String())
	}
}
