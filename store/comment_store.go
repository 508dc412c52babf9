package store

import (
	"signalalert/model"
	"sort"
	"sync"
	"time"
)

// CommentStore keeps the comments left on reports.
type CommentStore struct {
	mu     sync.RWMutex
	byID   map[int][]model.Comment
	nextID int
	now    func() time.Time
}

func NewCommentStore() *CommentStore {
	return &CommentStore{byID: make(map[int][]model.Comment), nextID: 1, now: time.Now}
}

// Add stores a comment on reportID and returns it with its id.
func (s *CommentStore) Add(reportID, userID int, author, content string) model.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := model.Comment{
		CommentID: s.nextID,
		ReportID:  reportID,
		UserID:    userID,
		Author:    author,
		Content:   content,
		CreatedAt: s.now(),
	}
	s.nextID++
	s.byID[reportID] = append(s.byID[reportID], c)
	return c
}

// ForReport lists the comments of reportID, newest first.
func (s *CommentStore) ForReport(reportID int) []model.Comment {
	s.mu.RLock()
	out := append([]model.Comment(nil), s.byID[reportID]...)
	s.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CommentID > out[j].CommentID
	})
	return out
}
