package services

import (
	"context"
	"errors"

	apperrors "patrimon/internal/errors"
	"patrimon/internal/kvstore"
)

// allowedPreferences is the closed set of keys the preference endpoints
// accept. Simulation targets live in the same store but are only
// written by the simulation service.
var allowedPreferences = map[string]struct{}{
	"theme":        {},
	"display_name": {},
	"photo_uri":    {},
	"biometry":     {},
}

// preferenceService reads and writes whitelisted user preferences.
type preferenceService struct {
	prefs *kvstore.Store
}

// NewPreferenceService creates a new PreferenceServicer.
func NewPreferenceService(prefs *kvstore.Store) PreferenceServicer {
	return &preferenceService{prefs: prefs}
}

// GetPreference returns the stored value for a whitelisted key.
func (s *preferenceService) GetPreference(ctx context.Context, userID, key string) (string, error) {
	if _, ok := allowedPreferences[key]; !ok {
		return "", apperrors.ErrUnknownPreference
	}

	value, err := s.prefs.Get(ctx, userID, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return "", apperrors.ErrPreferenceNotSet
		}
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return value, nil
}

// SetPreference stores a value for a whitelisted key.
func (s *preferenceService) SetPreference(ctx context.Context, actor Actor, key, value string) error {
	if actor.ReadOnly {
		return apperrors.ErrReadOnlyMode
	}
	if _, ok := allowedPreferences[key]; !ok {
		return apperrors.ErrUnknownPreference
	}
	if value == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "preference value cannot be empty")
	}

	if err := s.prefs.Set(ctx, actor.UserID, key, value); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
