package models

import "time"

type PlanStatus string

const (
	PlanStatusActive    PlanStatus = "Active"
	PlanStatusCompleted PlanStatus = "Completed"
	PlanStatusCancelled PlanStatus = "Cancelled"
)

// DietPlan is assigned by a trainer to a user.
type DietPlan struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	UserID      string     `gorm:"index;not null" json:"user_id"`
	User        User       `gorm:"foreignKey:UserID" json:"user"`
	TrainerID   string     `gorm:"index;not null" json:"trainer_id"`
	Trainer     User       `gorm:"foreignKey:TrainerID" json:"trainer"`
	Duration    int        `gorm:"not null;default:7" json:"duration"` // days
	Status      PlanStatus `gorm:"type:VARCHAR(20);default:'Active'" json:"status"`
	Meals       []Meal     `gorm:"foreignKey:DietPlanID;constraint:OnDelete:CASCADE" json:"meals"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Meal struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	DietPlanID  uint    `gorm:"index" json:"diet_plan_id"`
	Name        string  `gorm:"not null" json:"name"`
	Time        string  `gorm:"not null" json:"time"` // e.g. "08:00", "breakfast"
	Description string  `json:"description"`
	Calories    int     `gorm:"not null" json:"calories"`
	Proteins    float64 `json:"proteins"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
}

// DailyCalories is the sum of calories over all meals.
func (p *DietPlan) DailyCalories() int {
	total := 0
	for _, meal := range p.Meals {
		total += meal.Calories
	}
	return total
}

// WorkoutPlan mirrors DietPlan with exercises instead of meals.
type WorkoutPlan struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	UserID      string     `gorm:"index;not null" json:"user_id"`
	User        User       `gorm:"foreignKey:UserID" json:"user"`
	TrainerID   string     `gorm:"index;not null" json:"trainer_id"`
	Trainer     User       `gorm:"foreignKey:TrainerID" json:"trainer"`
	Duration    int        `gorm:"not null;default:7" json:"duration"` // days
	Status      PlanStatus `gorm:"type:VARCHAR(20);default:'Active'" json:"status"`
	Exercises   []Exercise `gorm:"foreignKey:WorkoutPlanID;constraint:OnDelete:CASCADE" json:"exercises"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Exercise struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	WorkoutPlanID uint   `gorm:"index" json:"workout_plan_id"`
	Name          string `gorm:"not null" json:"name"`
	Sets          int    `gorm:"not null" json:"sets"`
	Reps          int    `gorm:"not null" json:"reps"`
	Rest          string `json:"rest"` // e.g. "60s"
	Description   string `json:"description"`
	Day           int    `gorm:"not null;default:1" json:"day"`
}
