package repository

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/model"

	"go.uber.org/zap"
)

var (
	ErrNotFound    = errors.New("notification not found")
	ErrDuplicateID = errors.New("duplicate notification id")
)

// NotificationRepository is the in-memory notification store.
// Records keep insertion order and ids are never reused, even after delete.
type NotificationRepository struct {
	mu     sync.RWMutex
	items  []model.Notification
	index  map[int]int
	nextID int
	logger *zap.Logger
}

// NewNotificationRepository creates a store holding the seed records
func NewNotificationRepository(seed []model.Notification, logger *zap.Logger) (*NotificationRepository, error) {
	r := &NotificationRepository{
		items:  make([]model.Notification, 0, len(seed)),
		index:  make(map[int]int, len(seed)),
		nextID: 1,
		logger: logger,
	}

	for _, n := range seed {
		if _, exists := r.index[n.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, n.ID)
		}
		r.index[n.ID] = len(r.items)
		r.items = append(r.items, n)
		if n.ID >= r.nextID {
			r.nextID = n.ID + 1
		}
	}

	logger.Debug("Notification store initialized",
		zap.Int("count", len(r.items)),
		zap.Int("next_id", r.nextID))

	return r, nil
}

// Add appends a new unread, unarchived notification and returns it
func (r *NotificationRepository) Add(n model.Notification) model.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	n.ID = r.nextID
	r.nextID++
	n.Read = false
	n.Archived = false
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	r.index[n.ID] = len(r.items)
	r.items = append(r.items, n)

	return n
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(id int) (model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return model.Notification{}, ErrNotFound
	}
	return r.items[i], nil
}

// MarkRead marks a notification as read. It reports whether anything changed.
func (r *NotificationRepository) MarkRead(id int) bool {
	return r.update(id, func(n *model.Notification) bool {
		if n.Read {
			return false
		}
		n.Read = true
		return true
	})
}

// MarkUnread marks a notification as unread
func (r *NotificationRepository) MarkUnread(id int) bool {
	return r.update(id, func(n *model.Notification) bool {
		if !n.Read {
			return false
		}
		n.Read = false
		return true
	})
}

// Archive archives a notification without touching its read flag
func (r *NotificationRepository) Archive(id int) bool {
	return r.update(id, func(n *model.Notification) bool {
		if n.Archived {
			return false
		}
		n.Archived = true
		return true
	})
}

// Delete removes a notification permanently
func (r *NotificationRepository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return false
	}

	r.items = append(r.items[:i], r.items[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.items); j++ {
		r.index[r.items[j].ID] = j
	}

	return true
}

// MarkAllRead marks every notification as read and returns how many changed
func (r *NotificationRepository) MarkAllRead() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := 0
	for i := range r.items {
		if !r.items[i].Read {
			r.items[i].Read = true
			changed++
		}
	}
	return changed
}

// ArchiveAllRead archives every read notification and returns how many changed
func (r *NotificationRepository) ArchiveAllRead() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := 0
	for i := range r.items {
		if r.items[i].Read && !r.items[i].Archived {
			r.items[i].Archived = true
			changed++
		}
	}
	return changed
}

// UnreadCount counts unread notifications
func (r *NotificationRepository) UnreadCount() int {
	return r.count(func(n model.Notification) bool { return !n.Read })
}

// UrgentUnreadCount counts unread urgent notifications
func (r *NotificationRepository) UrgentUnreadCount() int {
	return r.count(func(n model.Notification) bool { return n.Type == model.TypeUrgent && !n.Read })
}

// ArchivedCount counts archived notifications
func (r *NotificationRepository) ArchivedCount() int {
	return r.count(func(n model.Notification) bool { return n.Archived })
}

// TotalCount returns the number of notifications in the store
func (r *NotificationRepository) TotalCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Stats computes all badge counts in a single pass
func (r *NotificationRepository) Stats() model.NotificationStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := model.NotificationStats{Total: len(r.items)}
	for _, n := range r.items {
		if !n.Read {
			stats.Unread++
			if n.Type == model.TypeUrgent {
				stats.Urgent++
			}
		}
		if n.Archived {
			stats.Archived++
		}
	}
	return stats
}

// Query returns the notifications matching q in store order
func (r *NotificationRepository) Query(q model.NotificationQuery) []model.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Notification, 0)
	for _, n := range r.items {
		if q.Matches(n) {
			result = append(result, n)
		}
	}
	return result
}

// Recent returns the first n notifications in store order
func (r *NotificationRepository) Recent(n int) []model.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n <= 0 {
		return []model.Notification{}
	}
	if n > len(r.items) {
		n = len(r.items)
	}

	result := make([]model.Notification, n)
	copy(result, r.items[:n])
	return result
}

func (r *NotificationRepository) update(id int, apply func(n *model.Notification) bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		r.logger.Debug("Notification not found, ignoring", zap.Int("id", id))
		return false
	}
	return apply(&r.items[i])
}

func (r *NotificationRepository) count(pred func(n model.Notification) bool) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, n := range r.items {
		if pred(n) {
			total++
		}
	}
	return total
}
