package models

// Institution represents a connected account-holding entity.
// Institutions are created by the connection flow together with one
// seed asset and are never updated or deleted afterwards.
type Institution struct {
	Base
	UserID   string  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string  `gorm:"not null" json:"name"`
	LogoURI  string  `json:"logo_uri,omitempty"` // empty -> client renders initials
	Balance  int64   `gorm:"type:bigint;not null;default:0" json:"balance"`
	SharePct float64 `gorm:"not null;default:0" json:"share_pct"`
	IsGlobal bool    `gorm:"not null;default:false" json:"is_global"`

	// Relationships
	Assets []Asset `gorm:"foreignKey:InstitutionID" json:"assets,omitempty"`
}
