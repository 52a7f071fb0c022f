package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "patrimon/internal/errors"
	"patrimon/internal/models"
	"patrimon/internal/pagination"
	"patrimon/internal/portfolio"
)

// assetService reads the user's asset ledger. Assets are only created
// by the institution connection flow, so there are no mutations here.
type assetService struct {
	db *gorm.DB
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB) AssetServicer {
	return &assetService{db: db}
}

// contextScope narrows a query to the reporting context. Consolidated
// applies no filter.
func contextScope(rctx portfolio.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch rctx {
		case portfolio.ContextNational:
			return db.Where("is_global = ?", false)
		case portfolio.ContextGlobal:
			return db.Where("is_global = ?", true)
		}
		return db
	}
}

// GetUserAssets returns a paginated list of assets in the given context.
func (s *assetService) GetUserAssets(userID string, rctx portfolio.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	if !rctx.IsValid() {
		return nil, apperrors.ErrInvalidContext
	}
	page.Defaults()

	base := s.db.Model(&models.Asset{}).Where("user_id = ?", userID).Scopes(contextScope(rctx))

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var assets []models.Asset
	if err := base.Preload("Institution").Order("value DESC").Scopes(pagination.Paginate(page)).Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(assets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetLedger returns every asset in the given context, unpaginated.
// Portfolio aggregations need the full ledger to stay exact.
func (s *assetService) GetLedger(userID string, rctx portfolio.Context) ([]models.Asset, error) {
	if !rctx.IsValid() {
		return nil, apperrors.ErrInvalidContext
	}

	var assets []models.Asset
	err := s.db.Where("user_id = ?", userID).Scopes(contextScope(rctx)).Find(&assets).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return assets, nil
}

// GetAssetByID returns an asset by ID if it belongs to the user.
func (s *assetService) GetAssetByID(userID, assetID string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.Where("id = ? AND user_id = ?", assetID, userID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}
