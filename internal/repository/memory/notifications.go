package memory

import (
	"context"
	"sort"

	"github.com/ajs-hub/placement-api/internal/models"
)

// NotificationRepository keeps notifications, newest first.
type NotificationRepository struct {
	s *Store
}

// List returns notifications newest first.
func (r *NotificationRepository) List(_ context.Context, filter models.NotificationFilter) ([]models.Notification, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := make([]models.Notification, 0, len(r.s.notifications))
	for _, n := range r.s.notifications {
		if filter.UnreadOnly && n.Read {
			continue
		}
		matched = append(matched, n)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return page(matched, filter.Page, filter.PageSize), len(matched), nil
}

// Create inserts a notification.
func (r *NotificationRepository) Create(_ context.Context, n *models.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n.ID = newID(n.ID)
	if n.CreatedAt.IsZero() {
		n.CreatedAt = r.s.stamp()
	}
	r.s.notifications[n.ID] = *n
	return nil
}

// MarkRead flags one notification as read.
func (r *NotificationRepository) MarkRead(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n, ok := r.s.notifications[id]
	if !ok {
		return errNotFound
	}
	n.Read = true
	r.s.notifications[id] = n
	return nil
}

// MarkAllRead flags every unread notification and reports how many changed.
func (r *NotificationRepository) MarkAllRead(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	changed := 0
	for id, n := range r.s.notifications {
		if n.Read {
			continue
		}
		n.Read = true
		r.s.notifications[id] = n
		changed++
	}
	return changed, nil
}

// DeleteAll clears every notification.
func (r *NotificationRepository) DeleteAll(_ context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.notifications = make(map[string]models.Notification)
	return nil
}

// CountUnread returns the number of unread notifications.
func (r *NotificationRepository) CountUnread(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	unread := 0
	for _, n := range r.s.notifications {
		if !n.Read {
			unread++
		}
	}
	return unread, nil
}
