package models

// AssetCategory represents the closed set of asset categories.
type AssetCategory string

const (
	CategoryStocks      AssetCategory = "stocks"
	CategoryFixedIncome AssetCategory = "fixed_income"
	CategoryREITs       AssetCategory = "reits"
	CategoryCash        AssetCategory = "cash"
	CategoryCrypto      AssetCategory = "crypto"
)

// Categories lists every asset category in display order.
var Categories = []AssetCategory{
	CategoryStocks,
	CategoryFixedIncome,
	CategoryREITs,
	CategoryCash,
	CategoryCrypto,
}

// IsValid reports whether the category is one of the enumerated values.
func (c AssetCategory) IsValid() bool {
	switch c {
	case CategoryStocks, CategoryFixedIncome, CategoryREITs, CategoryCash, CategoryCrypto:
		return true
	}
	return false
}

// Asset represents one holding in the user's ledger.
// Value and Invested are stored in cents. ReturnPct is informational:
// it could be recomputed from value and invested, but the stored field
// is authoritative for display.
type Asset struct {
	Base
	UserID        string        `gorm:"type:uuid;not null;index" json:"user_id"`
	InstitutionID string        `gorm:"type:uuid;not null" json:"institution_id"`
	Name          string        `gorm:"not null" json:"name"`
	Ticker        string        `gorm:"not null" json:"ticker"`
	Category      AssetCategory `gorm:"not null" json:"category"`
	Subcategory   string        `json:"subcategory"`
	Value         int64         `gorm:"type:bigint;not null" json:"value"`
	Invested      int64         `gorm:"type:bigint;not null" json:"invested"`
	ReturnPct     float64       `gorm:"not null;default:0" json:"return_pct"`
	IsGlobal      bool          `gorm:"not null;default:false" json:"is_global"`

	// Relationships
	Institution Institution `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"`
}
