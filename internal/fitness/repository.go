package fitness

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/menegetegabriel-collab/fit30/internal/errors"
	"github.com/menegetegabriel-collab/fit30/internal/keyvalue"
)

// Storage keys. Progress is keyed per user so a stored record always belongs
// to the profile that created it.
const (
	profileKey        = "fit30_user_profile"
	progressKeyPrefix = "fit30_workout_progress:"
	reminderKey       = "fit30_daily_reminder"
	themeKey          = "fit30_theme"
)

// ErrNotFound is returned when a requested record has never been stored or
// was found unreadable.
var ErrNotFound = errors.NewSentinel("fitness: not found")

// repository persists fitness records as JSON documents in the key-value
// store.
//
// A record that fails to decode is treated as absent rather than as a hard
// error: the caller sees ErrNotFound and can rebuild state through the usual
// onboarding flow instead of being stuck behind one corrupt row.
type repository struct {
	store  *keyvalue.Store
	logger *slog.Logger
}

func newRepository(store *keyvalue.Store, logger *slog.Logger) *repository {
	return &repository{store: store, logger: logger}
}

func progressKey(userID string) string {
	return progressKeyPrefix + userID
}

// getJSON reads and decodes the record stored under key into out.
func (r *repository) getJSON(ctx context.Context, key string, out any) error {
	data, err := r.store.Get(ctx, key)
	if keyvalue.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if err = json.Unmarshal(data, out); err != nil {
		r.logger.LogAttrs(ctx, slog.LevelWarn, "discarding unreadable record",
			slog.String("key", key),
			slog.Any("error", err))
		return ErrNotFound
	}
	return nil
}

// setJSON encodes value and stores it under key.
func (r *repository) setJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err = r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (r *repository) profile(ctx context.Context) (UserProfile, error) {
	var profile UserProfile
	if err := r.getJSON(ctx, profileKey, &profile); err != nil {
		return UserProfile{}, err
	}
	return profile, nil
}

func (r *repository) saveProfile(ctx context.Context, profile UserProfile) error {
	return r.setJSON(ctx, profileKey, profile)
}

func (r *repository) progress(ctx context.Context, userID string) (WorkoutProgress, error) {
	var progress WorkoutProgress
	if err := r.getJSON(ctx, progressKey(userID), &progress); err != nil {
		return WorkoutProgress{}, err
	}
	return progress, nil
}

func (r *repository) saveProgress(ctx context.Context, progress WorkoutProgress) error {
	return r.setJSON(ctx, progressKey(progress.UserID), progress)
}

func (r *repository) reminder(ctx context.Context) (DailyReminder, error) {
	var reminder DailyReminder
	if err := r.getJSON(ctx, reminderKey, &reminder); err != nil {
		return DailyReminder{}, err
	}
	return reminder, nil
}

func (r *repository) saveReminder(ctx context.Context, reminder DailyReminder) error {
	return r.setJSON(ctx, reminderKey, reminder)
}

func (r *repository) theme(ctx context.Context) (Theme, error) {
	var theme Theme
	if err := r.getJSON(ctx, themeKey, &theme); err != nil {
		return "", err
	}
	return theme, nil
}

func (r *repository) saveTheme(ctx context.Context, theme Theme) error {
	return r.setJSON(ctx, themeKey, theme)
}

// reset removes every stored record in one transaction.
func (r *repository) reset(ctx context.Context, userID string) error {
	err := r.store.DeleteAll(ctx,
		profileKey,
		progressKey(userID),
		reminderKey,
		themeKey,
	)
	if err != nil {
		return fmt.Errorf("delete stored records: %w", err)
	}
	return nil
}
