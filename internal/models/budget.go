package models

import "time"

// Budget is a monthly spending limit for a single category. At most one
// budget exists per category; setting it again replaces the limit and
// restamps CreatedDate.
type Budget struct {
	Base
	Category     string    `gorm:"uniqueIndex;not null" json:"category"`
	MonthlyLimit float64   `gorm:"not null" json:"monthly_limit"`
	CreatedDate  time.Time `gorm:"not null" json:"created_date"`
}
