package services

import (
	"context"
	"testing"

	"patrimon/internal/testutil"
)

func TestPreferences(t *testing.T) {
	t.Run("set_and_get", func(t *testing.T) {
		svc := NewPreferenceService(setupPrefs(t))
		actor := Actor{UserID: "user-1"}

		testutil.AssertNoError(t, svc.SetPreference(context.Background(), actor, "theme", "dark"))

		value, err := svc.GetPreference(context.Background(), "user-1", "theme")
		testutil.AssertNoError(t, err)
		if value != "dark" {
			t.Errorf("expected dark, got %s", value)
		}
	})

	t.Run("unknown_key_rejected", func(t *testing.T) {
		svc := NewPreferenceService(setupPrefs(t))

		err := svc.SetPreference(context.Background(), Actor{UserID: "user-1"}, "favorite_color", "blue")
		testutil.AssertAppError(t, err, "UNKNOWN_PREFERENCE")

		_, err = svc.GetPreference(context.Background(), "user-1", "favorite_color")
		testutil.AssertAppError(t, err, "UNKNOWN_PREFERENCE")
	})

	t.Run("unset_key", func(t *testing.T) {
		svc := NewPreferenceService(setupPrefs(t))

		_, err := svc.GetPreference(context.Background(), "user-1", "theme")
		testutil.AssertAppError(t, err, "PREFERENCE_NOT_SET")
	})

	t.Run("empty_value_rejected", func(t *testing.T) {
		svc := NewPreferenceService(setupPrefs(t))

		err := svc.SetPreference(context.Background(), Actor{UserID: "user-1"}, "theme", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("viewer_mode_rejected", func(t *testing.T) {
		svc := NewPreferenceService(setupPrefs(t))

		err := svc.SetPreference(context.Background(), Actor{UserID: "user-1", ReadOnly: true}, "theme", "dark")
		testutil.AssertAppError(t, err, "READ_ONLY_MODE")
	})
}
