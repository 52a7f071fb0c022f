package services

import (
	"fmt"
	"math/rand"
	"strings"

	"gorm.io/gorm"

	"patrimon/internal/catalog"
	apperrors "patrimon/internal/errors"
	"patrimon/internal/models"
	"patrimon/internal/pagination"
)

// Seed balance range for a freshly connected institution, in cents.
const (
	seedBalanceMin  = 100_000   // R$ 1.000,00
	seedBalanceSpan = 4_900_001 // up to R$ 50.000,00
)

// institutionService handles institution connections. There is no real
// aggregator integration; connecting synthesizes plausible data.
type institutionService struct {
	db *gorm.DB
}

// NewInstitutionService creates a new InstitutionServicer.
func NewInstitutionService(db *gorm.DB) InstitutionServicer {
	return &institutionService{db: db}
}

// Catalog returns the fixed list of connectable institutions.
func (s *institutionService) Catalog() []catalog.Entry {
	return catalog.Entries
}

// Connect links a catalog institution to the user's account. The
// credential token is required but never stored or verified; the mock
// flow accepts any non-empty value. A new institution gets a seeded
// cash asset, and every institution's share of the user's total balance
// is recomputed in the same transaction.
func (s *institutionService) Connect(actor Actor, name, credentialToken string) (*models.Institution, error) {
	if actor.ReadOnly {
		return nil, apperrors.ErrReadOnlyMode
	}
	if strings.TrimSpace(credentialToken) == "" {
		return nil, apperrors.ErrMissingCredential
	}

	entry, ok := catalog.Find(name)
	if !ok {
		return nil, apperrors.ErrUnknownInstitution
	}

	balance := seedBalanceMin + rand.Int63n(seedBalanceSpan)

	institution := &models.Institution{
		UserID:   actor.UserID,
		Name:     entry.Name,
		LogoURI:  entry.LogoURI,
		Balance:  balance,
		IsGlobal: entry.IsGlobal(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(institution).Error; err != nil {
			return err
		}

		seed := &models.Asset{
			UserID:        actor.UserID,
			InstitutionID: institution.ID,
			Name:          fmt.Sprintf("%s Cash", entry.Name),
			Ticker:        "CASH",
			Category:      models.CategoryCash,
			Subcategory:   "Checking Account",
			Value:         balance,
			Invested:      balance,
			IsGlobal:      entry.IsGlobal(),
		}
		if err := tx.Create(seed).Error; err != nil {
			return err
		}

		return recomputeShares(tx, actor.UserID)
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Reload to pick up the share computed inside the transaction.
	if err := s.db.Where("id = ?", institution.ID).First(institution).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return institution, nil
}

// recomputeShares sets each institution's share_pct to its slice of the
// user's total balance. A zero total leaves every share at zero.
func recomputeShares(tx *gorm.DB, userID string) error {
	var institutions []models.Institution
	if err := tx.Where("user_id = ?", userID).Find(&institutions).Error; err != nil {
		return err
	}

	var total int64
	for _, inst := range institutions {
		total += inst.Balance
	}
	if total <= 0 {
		return nil
	}

	for _, inst := range institutions {
		share := float64(inst.Balance) / float64(total) * 100
		if err := tx.Model(&models.Institution{}).Where("id = ?", inst.ID).Update("share_pct", share).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetUserInstitutions returns a paginated list of the user's institutions.
func (s *institutionService) GetUserInstitutions(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Institution], error) {
	page.Defaults()

	base := s.db.Model(&models.Institution{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var institutions []models.Institution
	if err := base.Order("balance DESC").Scopes(pagination.Paginate(page)).Find(&institutions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(institutions, page.Page, page.PageSize, totalItems)
	return &result, nil
}
