package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfileField names an editable field of the user profile
type ProfileField string

const (
	ProfileName    ProfileField = "name"
	ProfileEmail   ProfileField = "email"
	ProfilePhone   ProfileField = "phone"
	ProfileAddress ProfileField = "address"
)

// UserProfile is the signed-in (mock) sender
type UserProfile struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	JoinedAt time.Time
}

// Initials returns the first letter of every word of the name
func (p UserProfile) Initials() string {
	out := make([]rune, 0, 3)
	start := true
	for _, r := range p.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
		}
	}
	return string(out)
}

// NotificationSettings are the per-channel opt-ins shown on the profile screen
type NotificationSettings struct {
	Email     bool
	Push      bool
	SMS       bool
	Marketing bool
}

// DefaultNotificationSettings matches a freshly created account
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{Email: true, Push: true, SMS: false, Marketing: false}
}

// SenderStats summarises the history of the sender
type SenderStats struct {
	TotalTransactions int
	TotalSent         decimal.Decimal // USD, completed transfers only
}
