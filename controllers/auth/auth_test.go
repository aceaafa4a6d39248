package authControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
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

func testRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/register", Register(db))
	r.POST("/api/auth/login", Login(db))
	return r
}

func TestRegister_MissingFields(t *testing.T) {
	db, _ := setupTestDB(t)
	router := testRouter(db)

	body := `{"name": "Alice", "email": "alice@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d (%s)", http.StatusBadRequest, w.Code, w.Body.String())
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	db, _ := setupTestDB(t)
	router := testRouter(db)

	body := `{
		"name": "Alice",
		"email": "alice@example.com",
		"password": "short",
		"phone": "5551234567",
		"address": {"street": "12 Main St", "city": "Pune", "state": "MH", "country": "India", "postal_code": "411001"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d (%s)", http.StatusBadRequest, w.Code, w.Body.String())
	}
}

// Self-registering as admin is rejected before any storage access.
func TestRegister_AdminRoleForbidden(t *testing.T) {
	db, _ := setupTestDB(t)
	router := testRouter(db)

	body := `{
		"name": "Mallory",
		"email": "mallory@example.com",
		"password": "supersecret",
		"phone": "5551234567",
		"address": {"street": "12 Main St", "city": "Pune", "state": "MH", "country": "India", "postal_code": "411001"},
		"role": "admin"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status %d, got %d (%s)", http.StatusForbidden, w.Code, w.Body.String())
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	db, mock := setupTestDB(t)
	router := testRouter(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}))

	body := `{"email": "nobody@example.com", "password": "whatever1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d (%s)", http.StatusUnauthorized, w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Database expectations were not met: %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db, mock := setupTestDB(t)
	router := testRouter(db)

	// bcrypt hash of "correct-horse" will not match "wrong-password"
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "role"}).
			AddRow("u1", "alice@example.com", "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", "user"))

	body := `{"email": "alice@example.com", "password": "wrong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d (%s)", http.StatusUnauthorized, w.Code, w.Body.String())
	}
}
