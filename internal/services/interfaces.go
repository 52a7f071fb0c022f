package services

import (
	"context"
	"time"

	"patrimon/internal/catalog"
	"patrimon/internal/marketdata"
	"patrimon/internal/models"
	"patrimon/internal/pagination"
	"patrimon/internal/portfolio"
	"patrimon/internal/simulation"
)

// Actor identifies who is performing an operation. ReadOnly is set for
// viewer-mode sessions; mutating service methods reject such actors.
type Actor struct {
	UserID   string
	ReadOnly bool
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, displayName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
	ClearRefreshTokenHash(userID string) error
	UpdateProfile(actor Actor, update ProfileUpdate) (*models.User, error)
	RequestPasswordReset(email string) error
}

// ProfileUpdate holds optional profile fields; nil means "leave as is".
type ProfileUpdate struct {
	DisplayName     *string
	Currency        *string
	PhotoURI        *string
	BiometryEnabled *bool
}

// InstitutionServicer defines the contract for institution connections.
type InstitutionServicer interface {
	Connect(actor Actor, name, credentialToken string) (*models.Institution, error)
	GetUserInstitutions(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Institution], error)
	Catalog() []catalog.Entry
}

// AssetServicer defines the contract for reading the asset ledger.
type AssetServicer interface {
	GetUserAssets(userID string, rctx portfolio.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
	GetLedger(userID string, rctx portfolio.Context) ([]models.Asset, error)
	GetAssetByID(userID, assetID string) (*models.Asset, error)
}

// PortfolioServicer defines the contract for portfolio reporting.
type PortfolioServicer interface {
	GetStats(userID string, rctx portfolio.Context) (*portfolio.Stats, error)
	GetAllocation(userID string, rctx portfolio.Context) ([]portfolio.CategoryGroup, error)
	GetEvolution(userID string, rctx portfolio.Context) ([]portfolio.EvolutionPoint, error)
}

// GoalProgress contains saved vs target data for a financial goal.
type GoalProgress struct {
	GoalID        string  `json:"goal_id"`
	Target        int64   `json:"target"`
	Current       int64   `json:"current"`
	Remaining     int64   `json:"remaining"`
	Percentage    float64 `json:"percentage"`
	DaysRemaining int     `json:"days_remaining"`
}

// GoalServicer defines the contract for financial-goal business logic.
type GoalServicer interface {
	CreateGoal(actor Actor, title string, targetAmount, currentAmount int64, deadline time.Time) (*models.FinancialGoal, error)
	GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.FinancialGoal], error)
	GetGoalByID(userID, goalID string) (*models.FinancialGoal, error)
	UpdateGoal(actor Actor, goalID, title string, targetAmount, currentAmount *int64, deadline *time.Time) (*models.FinancialGoal, error)
	DeleteGoal(actor Actor, goalID string) error
	GetGoalProgress(userID, goalID string) (*GoalProgress, error)
}

// SimulationOutcome is the simulator's answer for one request. When the
// market-data fetch fails the outcome carries a manual-entry hint
// instead of an error; Result and Quote are nil in that case.
type SimulationOutcome struct {
	State               simulation.State            `json:"state"`
	ManualEntryRequired bool                        `json:"manual_entry_required"`
	Quote               *marketdata.Quote           `json:"quote,omitempty"`
	Result              *portfolio.SimulationResult `json:"result,omitempty"`
}

// SimulationServicer defines the contract for income simulations.
type SimulationServicer interface {
	GetTarget(ctx context.Context, userID, assetID string) (*float64, error)
	Simulate(ctx context.Context, actor Actor, assetID string, targetMonthlyIncome float64) (*SimulationOutcome, error)
	SimulateManual(ctx context.Context, actor Actor, assetID string, targetMonthlyIncome, price, dividendYieldPct float64) (*SimulationOutcome, error)
}

// InsightGenerator produces portfolio commentary. Failures degrade to a
// fallback message inside the generator, never an error.
type InsightGenerator interface {
	Generate(ctx context.Context, stats portfolio.Stats, assets []models.Asset) string
}

// InsightServicer defines the contract for AI portfolio insights.
type InsightServicer interface {
	GetInsights(ctx context.Context, userID string, rctx portfolio.Context) (string, error)
}

// PreferenceServicer defines the contract for scalar user preferences.
type PreferenceServicer interface {
	GetPreference(ctx context.Context, userID, key string) (string, error)
	SetPreference(ctx context.Context, actor Actor, key, value string) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
