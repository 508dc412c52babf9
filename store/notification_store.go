package store

import (
	"errors"
	"signalalert/model"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationStore is the per-user inbox.
type NotificationStore struct {
	mu    sync.RWMutex
	items map[string]*model.Notification
	seq   map[string]int
	next  int
	now   func() time.Time
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{
		items: make(map[string]*model.Notification),
		seq:   make(map[string]int),
		now:   time.Now,
	}
}

// Push records a new unread notification for userID.
func (s *NotificationStore) Push(userID int, kind, title, content string, relatedID int) model.Notification {
	n := &model.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Type:           kind,
		Title:          title,
		Content:        content,
		RelatedID:      relatedID,
		CreatedAt:      s.now(),
	}
	s.mu.Lock()
	s.items[n.NotificationID] = n
	s.next++
	s.seq[n.NotificationID] = s.next
	s.mu.Unlock()
	return *n
}

// ForUser lists the notifications of userID, newest first. Notifications
// pushed at the same instant keep reverse push order.
func (s *NotificationStore) ForUser(userID int) []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Notification, 0)
	for _, n := range s.items {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return s.seq[out[i].NotificationID] > s.seq[out[j].NotificationID]
	})
	return out
}

// UnreadCount is the number shown on the account badge.
func UnreadCount(ns []model.Notification) int {
	count := 0
	for _, n := range ns {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// MarkRead flags one notification of userID as read.
func (s *NotificationStore) MarkRead(userID int, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.items[id]
	if !ok || n.UserID != userID {
		return ErrNotificationNotFound
	}
	n.IsRead = true
	return nil
}

// Pending returns the notifications not yet delivered by push.
func (s *NotificationStore) Pending() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Notification
	for _, n := range s.items {
		if !n.IsSent {
			out = append(out, *n)
		}
	}
	return out
}

func (s *NotificationStore) MarkSent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.items[id]; ok {
		n.IsSent = true
	}
}
