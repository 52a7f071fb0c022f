package models

import "time"

// User represents the user model in the database
type User struct {
	Base
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	Password            string     `gorm:"not null" json:"-"`
	DisplayName         string     `json:"display_name"`
	Currency            string     `gorm:"not null;default:'BRL'" json:"currency"`
	PhotoURI            string     `json:"photo_uri,omitempty"`
	BiometryEnabled     bool       `gorm:"default:true" json:"biometry_enabled"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	RefreshTokenHash    string     `gorm:"size:64" json:"-"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`

	Institutions []Institution   `gorm:"foreignKey:UserID" json:"institutions,omitempty"`
	Assets       []Asset         `gorm:"foreignKey:UserID" json:"assets,omitempty"`
	Goals        []FinancialGoal `gorm:"foreignKey:UserID" json:"goals,omitempty"`
}
