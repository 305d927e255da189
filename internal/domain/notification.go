package domain

import (
	"errors"
	"time"
)

// NotificationKind is the severity of a toast
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationInfo    NotificationKind = "info"
	NotificationWarning NotificationKind = "warning"
	NotificationError   NotificationKind = "error"
)

// DefaultNotificationDuration applies when a spec leaves the duration unset
const DefaultNotificationDuration = 5000 * time.Millisecond

// NotificationAction is an optional button on a toast. Run is side-effect only.
type NotificationAction struct {
	Label string
	Run   func()
}

// Notification is an ephemeral message owned by the notification center.
// It is never mutated after creation.
type Notification struct {
	ID        string
	Kind      NotificationKind
	Title     string
	Message   string
	CreatedAt time.Time
	Action    *NotificationAction
	AutoHide  bool
	Duration  time.Duration
}

// NotificationSpec is what callers hand to the center. Nil AutoHide and zero Duration take the defaults.
type NotificationSpec struct {
	Kind     NotificationKind
	Title    string
	Message  string
	Action   *NotificationAction
	AutoHide *bool
	Duration time.Duration
}

// Validate ensures the spec can become a notification
func (s NotificationSpec) Validate() error {
	switch s.Kind {
	case NotificationSuccess, NotificationInfo, NotificationWarning, NotificationError:
	default:
		return errors.New("notification kind must be success, info, warning or error")
	}
	if s.Title == "" && s.Message == "" {
		return errors.New("notification must have a title or a message")
	}
	if s.Action != nil && s.Action.Label == "" {
		return errors.New("notification action must have a label")
	}
	return nil
}

// Build applies the defaults and stamps identity and creation time
func (s NotificationSpec) Build(id string, now time.Time) Notification {
	autoHide := true
	if s.AutoHide != nil {
		autoHide = *s.AutoHide
	}
	duration := s.Duration
	if duration <= 0 {
		duration = DefaultNotificationDuration
	}

	return Notification{
		ID:        id,
		Kind:      s.Kind,
		Title:     s.Title,
		Message:   s.Message,
		CreatedAt: now,
		Action:    s.Action,
		AutoHide:  autoHide,
		Duration:  duration,
	}
}

// Sticky is a helper for specs that must not auto-hide
func Sticky() *bool {
	v := false
	return &v
}

// PlatformPermission mirrors the browser/OS notification permission states
type PlatformPermission string

const (
	PermissionDefault PlatformPermission = "default"
	PermissionGranted PlatformPermission = "granted"
	PermissionDenied  PlatformPermission = "denied"
)
