package models

import "time"

// FinancialGoal represents a savings target. CurrentAmount is never
// advanced automatically; there is no contribution tracking.
type FinancialGoal struct {
	Base
	UserID        string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string    `gorm:"not null" json:"title"`
	TargetAmount  int64     `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount int64     `gorm:"type:bigint;not null;default:0" json:"current_amount"`
	Deadline      time.Time `gorm:"not null" json:"deadline"`
}
