package fitness

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/menegetegabriel-collab/fit30/internal/errors"
	"github.com/menegetegabriel-collab/fit30/internal/keyvalue"
)

// Service coordinates profile, progress, and settings operations on top of
// the key-value store.
type Service struct {
	repo   *repository
	logger *slog.Logger
	// now is swapped out in tests so streak arithmetic runs against a fixed
	// calendar.
	now func() time.Time
}

// NewService creates a fitness service backed by the given store.
func NewService(store *keyvalue.Store, logger *slog.Logger) *Service {
	return &Service{
		repo:   newRepository(store, logger),
		logger: logger,
		now:    time.Now,
	}
}

// Profile returns the stored user profile or ErrNotFound before onboarding.
func (s *Service) Profile(ctx context.Context) (UserProfile, error) {
	profile, err := s.repo.profile(ctx)
	if err != nil {
		return UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// SaveProfile stores the user profile, replacing any previous one.
func (s *Service) SaveProfile(ctx context.Context, profile UserProfile) error {
	if err := s.repo.saveProfile(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Progress returns the stored workout progress for the user or ErrNotFound
// when no plan has been started.
func (s *Service) Progress(ctx context.Context, userID string) (WorkoutProgress, error) {
	progress, err := s.repo.progress(ctx, userID)
	if err != nil {
		return WorkoutProgress{}, fmt.Errorf("get progress: %w", err)
	}
	return progress, nil
}

// Initialize starts the user on a plan with a fresh progress record,
// replacing any previous record. Switching plans therefore discards all
// earlier progress.
func (s *Service) Initialize(ctx context.Context, userID string, planID string) (WorkoutProgress, error) {
	progress := WorkoutProgress{
		UserID:              userID,
		PlanID:              planID,
		CurrentDay:          1,
		CompletedDays:       []int{},
		StartDate:           s.now(),
		LastWorkoutDate:     nil,
		Streak:              0,
		TotalCaloriesBurned: 0,
		TotalMinutesTrained: 0,
		Achievements:        []Achievement{},
	}
	if err := s.repo.saveProgress(ctx, progress); err != nil {
		return WorkoutProgress{}, fmt.Errorf("save progress: %w", err)
	}
	return progress, nil
}

// CompleteDay records a finished workout day: it adds the day to the
// completed set, advances the day cursor, updates the calendar streak, adds
// the calorie and minute totals, and unlocks any newly earned achievements.
//
// Completing without an active plan is a silent no-op. Re-completing a day
// does not grow the completed set but still advances the cursor, re-stamps
// the workout date, and adds to the totals again.
func (s *Service) CompleteDay(ctx context.Context, userID string, day int, caloriesBurned int, minutesTrained int) error {
	progress, err := s.repo.progress(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get progress: %w", err)
	}

	today := DateOf(s.now())

	progress.CompletedDays = addCompletedDay(progress.CompletedDays, day)
	progress.CurrentDay = day + 1
	progress.Streak = nextStreak(progress, today)
	progress.LastWorkoutDate = &today
	progress.TotalCaloriesBurned += caloriesBurned
	progress.TotalMinutesTrained += minutesTrained
	progress.Achievements = append(progress.Achievements, newAchievements(progress, s.now())...)

	if err = s.repo.saveProgress(ctx, progress); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "completed workout day",
		slog.Int("day", day),
		slog.Int("streak", progress.Streak),
		slog.Int("completedDays", len(progress.CompletedDays)))
	return nil
}

// addCompletedDay inserts day into the set, keeping it deduplicated and
// sorted ascending.
func addCompletedDay(days []int, day int) []int {
	for _, d := range days {
		if d == day {
			return days
		}
	}
	days = append(days, day)
	sort.Ints(days)
	return days
}

// nextStreak computes the streak after a workout on today. A workout on the
// day after the last one extends the streak; a gap of more than one day
// restarts it at one; a second workout on the same calendar day leaves it
// untouched.
func nextStreak(progress WorkoutProgress, today Date) int {
	if progress.LastWorkoutDate == nil {
		return 1
	}
	switch diff := today.DaysSince(*progress.LastWorkoutDate); {
	case diff == 1:
		return progress.Streak + 1
	case diff > 1:
		return 1
	default:
		return progress.Streak
	}
}

// CompletionPercentage returns the share of plan days completed, rounded to
// the nearest whole percent.
func CompletionPercentage(progress WorkoutProgress, totalDays int) int {
	if totalDays <= 0 {
		return 0
	}
	return int(math.Round(float64(len(progress.CompletedDays)) / float64(totalDays) * 100))
}

// Reminder returns the stored daily reminder, defaulting to an enabled 18:00
// reminder when none has been saved.
func (s *Service) Reminder(ctx context.Context) (DailyReminder, error) {
	reminder, err := s.repo.reminder(ctx)
	if errors.Is(err, ErrNotFound) {
		return DailyReminder{
			Enabled: true,
			Time:    "18:00",
			Message: "Time for your workout!",
		}, nil
	}
	if err != nil {
		return DailyReminder{}, fmt.Errorf("get reminder: %w", err)
	}
	return reminder, nil
}

// SaveReminder stores the daily reminder settings.
func (s *Service) SaveReminder(ctx context.Context, reminder DailyReminder) error {
	if err := s.repo.saveReminder(ctx, reminder); err != nil {
		return fmt.Errorf("save reminder: %w", err)
	}
	return nil
}

// ThemePreference returns the stored theme, defaulting to light.
func (s *Service) ThemePreference(ctx context.Context) (Theme, error) {
	theme, err := s.repo.theme(ctx)
	if errors.Is(err, ErrNotFound) {
		return ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("get theme: %w", err)
	}
	return theme, nil
}

// SaveTheme stores the theme preference.
func (s *Service) SaveTheme(ctx context.Context, theme Theme) error {
	if err := s.repo.saveTheme(ctx, theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// ResetAll deletes the profile, progress, reminder, and theme records in one
// atomic operation, returning the app to its pre-onboarding state.
func (s *Service) ResetAll(ctx context.Context, userID string) error {
	if err := s.repo.reset(ctx, userID); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}
