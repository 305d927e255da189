package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/observability"
)

const platformTimeout = 5 * time.Second

// Center owns the list of visible toasts.
// Every mutation replaces the slice, so a List result is never modified afterwards.
type Center struct {
	mu     sync.Mutex
	list   []domain.Notification
	timers map[string]*time.Timer

	platform       domain.PlatformNotifier
	permissionOnce sync.Once
	permitted      bool

	now    func() time.Time
	logger zerolog.Logger
}

// NewCenter creates an empty center. platform may be nil when no out-of-app channel exists.
func NewCenter(platform domain.PlatformNotifier, logger zerolog.Logger) *Center {
	return &Center{
		list:     []domain.Notification{},
		timers:   make(map[string]*time.Timer),
		platform: platform,
		now:      time.Now,
		logger:   logger.With().Str("component", "notification_center").Logger(),
	}
}

// Add creates a notification, puts it first in the list and schedules its expiry
func (c *Center) Add(spec domain.NotificationSpec) (domain.Notification, error) {
	if err := spec.Validate(); err != nil {
		return domain.Notification{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return domain.Notification{}, err
	}
	n := spec.Build(id.String(), c.now())

	c.mu.Lock()
	next := make([]domain.Notification, 0, len(c.list)+1)
	next = append(next, n)
	next = append(next, c.list...)
	c.list = next

	if n.AutoHide {
		c.timers[n.ID] = time.AfterFunc(n.Duration, func() {
			c.Remove(n.ID)
		})
	}
	visible := len(c.list)
	c.mu.Unlock()

	observability.NotificationsAdded.WithLabelValues(string(n.Kind)).Inc()
	observability.NotificationsVisible.Set(float64(visible))

	c.mirror(n)

	return n, nil
}

// Remove drops the notification with id. Unknown ids are a no-op, so a late timer is harmless.
func (c *Center) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}

	idx := -1
	for i, n := range c.list {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	next := make([]domain.Notification, 0, len(c.list)-1)
	next = append(next, c.list[:idx]...)
	next = append(next, c.list[idx+1:]...)
	c.list = next

	observability.NotificationsVisible.Set(float64(len(next)))
}

// Clear empties the list and cancels every pending expiry
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.list = []domain.Notification{}

	observability.NotificationsVisible.Set(0)
}

// List returns the visible notifications, newest first
func (c *Center) List() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list
}

// Get returns one visible notification
func (c *Center) Get(id string) (domain.Notification, error) {
	for _, n := range c.List() {
		if n.ID == id {
			return n, nil
		}
	}
	return domain.Notification{}, domain.ErrNotificationNotFound
}

// InvokeAction runs the action attached to a visible notification
func (c *Center) InvokeAction(id string) error {
	n, err := c.Get(id)
	if err != nil {
		return err
	}
	if n.Action == nil || n.Action.Run == nil {
		return domain.ErrNoNotificationAction
	}

	n.Action.Run()
	return nil
}

// mirror forwards the toast to the platform channel when permission was granted.
// Failures never reach the caller; the in-app list is the fallback.
func (c *Center) mirror(n domain.Notification) {
	if c.platform == nil || !c.platformPermitted() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), platformTimeout)
		defer cancel()

		if err := c.platform.Notify(ctx, n); err != nil {
			observability.PlatformDeliveryFailures.Inc()
			c.logger.Debug().Err(err).Str("notification_id", n.ID).Msg("platform notification dropped")
		}
	}()
}

// platformPermitted checks, and if still undecided requests, permission once per process
func (c *Center) platformPermitted() bool {
	c.permissionOnce.Do(func() {
		perm := c.platform.Permission()
		if perm == domain.PermissionDefault {
			ctx, cancel := context.WithTimeout(context.Background(), platformTimeout)
			defer cancel()

			requested, err := c.platform.RequestPermission(ctx)
			if err != nil {
				c.logger.Debug().Err(err).Msg("platform notification permission request failed")
			}
			perm = requested
		}
		c.permitted = perm == domain.PermissionGranted
	})
	return c.permitted
}
