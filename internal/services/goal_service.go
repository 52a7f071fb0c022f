package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "patrimon/internal/errors"
	"patrimon/internal/models"
	"patrimon/internal/pagination"
)

// goalService handles financial-goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal creates a new financial goal.
func (s *goalService) CreateGoal(actor Actor, title string, targetAmount, currentAmount int64, deadline time.Time) (*models.FinancialGoal, error) {
	if actor.ReadOnly {
		return nil, apperrors.ErrReadOnlyMode
	}
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be positive")
	}
	if currentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount cannot be negative")
	}

	goal := &models.FinancialGoal{
		UserID:        actor.UserID,
		Title:         title,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      deadline,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetUserGoals returns a paginated list of the user's goals, nearest
// deadline first.
func (s *goalService) GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.FinancialGoal], error) {
	page.Defaults()

	base := s.db.Model(&models.FinancialGoal{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.FinancialGoal
	if err := base.Order("deadline ASC").Scopes(pagination.Paginate(page)).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGoalByID returns a goal by ID if it belongs to the user.
func (s *goalService) GetGoalByID(userID, goalID string) (*models.FinancialGoal, error) {
	var goal models.FinancialGoal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// UpdateGoal updates an existing goal's fields.
func (s *goalService) UpdateGoal(actor Actor, goalID, title string, targetAmount, currentAmount *int64, deadline *time.Time) (*models.FinancialGoal, error) {
	if actor.ReadOnly {
		return nil, apperrors.ErrReadOnlyMode
	}

	goal, err := s.GetGoalByID(actor.UserID, goalID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if title != "" {
		updates["title"] = title
	}
	if targetAmount != nil {
		if *targetAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be positive")
		}
		updates["target_amount"] = *targetAmount
	}
	if currentAmount != nil {
		if *currentAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount cannot be negative")
		}
		updates["current_amount"] = *currentAmount
	}
	if deadline != nil {
		updates["deadline"] = *deadline
	}

	if len(updates) > 0 {
		if err := s.db.Model(goal).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return goal, nil
}

// DeleteGoal soft-deletes a goal.
func (s *goalService) DeleteGoal(actor Actor, goalID string) error {
	if actor.ReadOnly {
		return apperrors.ErrReadOnlyMode
	}

	goal, err := s.GetGoalByID(actor.UserID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetGoalProgress calculates saved vs target for a goal. A zero target
// reports zero percent rather than dividing by zero.
func (s *goalService) GetGoalProgress(userID, goalID string) (*GoalProgress, error) {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	var percentage float64
	if goal.TargetAmount > 0 {
		percentage = float64(goal.CurrentAmount) / float64(goal.TargetAmount) * 100
	}

	var daysRemaining int
	if until := time.Until(goal.Deadline); until > 0 {
		daysRemaining = int(until.Hours() / 24)
	}

	return &GoalProgress{
		GoalID:        goal.ID,
		Target:        goal.TargetAmount,
		Current:       goal.CurrentAmount,
		Remaining:     goal.TargetAmount - goal.CurrentAmount,
		Percentage:    percentage,
		DaysRemaining: daysRemaining,
	}, nil
}
