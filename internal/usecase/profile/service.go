// Package profile manages the mock sender profile and its notification opt-ins.
package profile

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/usecase/history"
)

// MockUser is the signed-in sender of the demo
var MockUser = domain.UserProfile{
	Name:     "Ahmad Hidayat",
	Email:    "ahmad.hidayat@email.com",
	Phone:    "+628123456789",
	Address:  "Jl. Sudirman No. 123, Jakarta Selatan, Indonesia",
	JoinedAt: time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
}

var fieldRules = map[domain.ProfileField]string{
	domain.ProfileName:    "required,min=3,max=100",
	domain.ProfileEmail:   "required,email",
	domain.ProfilePhone:   "required,idphone",
	domain.ProfileAddress: "required,max=200",
}

// Service keeps the profile in memory; edits last for the process lifetime
type Service struct {
	history  *history.HistoryService
	validate *validator.Validate

	mu       sync.RWMutex
	profile  domain.UserProfile
	settings domain.NotificationSettings
}

func NewService(historyService *history.HistoryService) *Service {
	validate := validator.New()
	// "idphone" accepts the Indonesian numbering plans the transfer form accepts
	_ = validate.RegisterValidation("idphone", func(fl validator.FieldLevel) bool {
		return domain.ValidIndonesianPhone(fl.Field().String())
	})

	return &Service{
		history:  historyService,
		validate: validate,
		profile:  MockUser,
		settings: domain.DefaultNotificationSettings(),
	}
}

func (s *Service) Get() domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// UpdateField validates and saves one field
func (s *Service) UpdateField(field domain.ProfileField, value string) (domain.UserProfile, error) {
	rule, ok := fieldRules[field]
	if !ok {
		return s.Get(), fmt.Errorf("%w: %q", domain.ErrInvalidProfileField, field)
	}

	value = strings.TrimSpace(value)
	if err := s.validate.Var(value, rule); err != nil {
		return s.Get(), fmt.Errorf("%w: %s: %s", domain.ErrInvalidProfileField, field, describe(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case domain.ProfileName:
		s.profile.Name = value
	case domain.ProfileEmail:
		s.profile.Email = value
	case domain.ProfilePhone:
		s.profile.Phone = value
	case domain.ProfileAddress:
		s.profile.Address = value
	}
	return s.profile, nil
}

// Reset discards every edit and restores the mock user
func (s *Service) Reset() domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = MockUser
	return s.profile
}

func (s *Service) NotificationSettings() domain.NotificationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Service) UpdateNotificationSettings(settings domain.NotificationSettings) domain.NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
	return s.settings
}

// Stats summarises the sender's history
func (s *Service) Stats(ctx context.Context) (domain.SenderStats, error) {
	stats, err := s.history.Stats(ctx)
	if err != nil {
		return domain.SenderStats{}, err
	}
	return domain.SenderStats{
		TotalTransactions: stats.TotalTransactions,
		TotalSent:         stats.TotalSent,
	}, nil
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	if fe.Param() != "" {
		return fmt.Sprintf("failed on %s=%s", fe.Tag(), fe.Param())
	}
	return "failed on " + fe.Tag()
}
