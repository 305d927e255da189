// Package preferences reads and writes the durable UI preferences.
// An absent value means "not yet set" and resolves to the default.
package preferences

import (
	"context"
	"fmt"
	"strconv"

	"github.com/simaogato/kirimuang-backend/internal/domain"
)

type Service struct {
	store domain.PreferenceStore
}

func NewService(store domain.PreferenceStore) *Service {
	return &Service{store: store}
}

// Language returns the stored language, the default when unset or unknown
func (s *Service) Language(ctx context.Context) (domain.Language, error) {
	v, ok, err := s.store.Get(ctx, domain.PrefLanguage)
	if err != nil {
		return domain.DefaultLanguage, fmt.Errorf("failed to read language preference: %w", err)
	}
	lang := domain.Language(v)
	if !ok || !lang.Valid() {
		return domain.DefaultLanguage, nil
	}
	return lang, nil
}

func (s *Service) SetLanguage(ctx context.Context, lang domain.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: language %q", domain.ErrInvalidPreference, lang)
	}
	if err := s.store.Set(ctx, domain.PrefLanguage, string(lang)); err != nil {
		return fmt.Errorf("failed to save language preference: %w", err)
	}
	return nil
}

// Theme returns the stored theme, system when unset
func (s *Service) Theme(ctx context.Context) (domain.Theme, error) {
	v, ok, err := s.store.Get(ctx, domain.PrefTheme)
	if err != nil {
		return domain.ThemeSystem, fmt.Errorf("failed to read theme preference: %w", err)
	}
	theme := domain.Theme(v)
	if !ok || !theme.Valid() {
		return domain.ThemeSystem, nil
	}
	return theme, nil
}

func (s *Service) SetTheme(ctx context.Context, theme domain.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: theme %q", domain.ErrInvalidPreference, theme)
	}
	if err := s.store.Set(ctx, domain.PrefTheme, string(theme)); err != nil {
		return fmt.Errorf("failed to save theme preference: %w", err)
	}
	return nil
}

func (s *Service) OnboardingCompleted(ctx context.Context) (bool, error) {
	v, ok, err := s.store.Get(ctx, domain.PrefOnboardingCompleted)
	if err != nil {
		return false, fmt.Errorf("failed to read onboarding flag: %w", err)
	}
	if !ok {
		return false, nil
	}
	done, err := strconv.ParseBool(v)
	if err != nil {
		return false, nil
	}
	return done, nil
}

func (s *Service) CompleteOnboarding(ctx context.Context) error {
	if err := s.store.Set(ctx, domain.PrefOnboardingCompleted, "true"); err != nil {
		return fmt.Errorf("failed to save onboarding flag: %w", err)
	}
	return nil
}

// StartRoute is where a fresh session lands: onboarding until it was completed once
func (s *Service) StartRoute(ctx context.Context) (domain.Route, error) {
	done, err := s.OnboardingCompleted(ctx)
	if err != nil {
		return domain.RouteDashboard, err
	}
	if !done {
		return domain.RouteOnboarding, nil
	}
	return domain.RouteDashboard, nil
}
