package store

import (
	"context"
	"math/rand"
	"signalalert/model"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Mirror receives every change applied to the in-memory store.
type Mirror interface {
	SaveReport(ctx context.Context, report model.Report) error
	UpdateStatus(ctx context.Context, id int, status model.ReportStatus) error
}

// ImagePicker chooses an image URI for a new report that came without one.
type ImagePicker func(t model.ReportType) string

type Option func(*ReportStore)

func WithImagePicker(p ImagePicker) Option {
	return func(s *ReportStore) { s.pick = p }
}

func WithMirror(m Mirror) Option {
	return func(s *ReportStore) { s.mirrors = append(s.mirrors, m) }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *ReportStore) { s.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *ReportStore) { s.now = now }
}

// ReportStore owns the ordered report collection, newest first.
type ReportStore struct {
	mu      sync.RWMutex
	reports []model.Report
	pick    ImagePicker
	mirrors []Mirror
	log     *zap.Logger
	now     func() time.Time
}

// New builds a store holding seed in the given order.
func New(seed []model.Report, opts ...Option) *ReportStore {
	s := &ReportStore{
		reports: append([]model.Report(nil), seed...),
		pick:    RandomImage,
		log:     zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add assigns the next id, forces the active status and inserts the report
// at the front of the collection.
func (s *ReportStore) Add(ctx context.Context, report model.Report) model.Report {
	s.mu.Lock()
	report.ID = s.maxID() + 1
	report.Status = model.StatusActive
	if report.Image == "" {
		report.Image = s.pick(report.Type)
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = s.now()
	}
	s.reports = append([]model.Report{report}, s.reports...)
	s.mu.Unlock()

	for _, m := range s.mirrors {
		if err := m.SaveReport(ctx, report); err != nil {
			s.log.Warn("mirror save failed", zap.Int("report_id", report.ID), zap.Error(err))
		}
	}
	s.log.Info("report added", zap.Int("report_id", report.ID), zap.String("type", string(report.Type)))
	return report
}

// MarkFound moves a report to the found status. Unknown ids are ignored.
// It reports whether the status actually changed.
func (s *ReportStore) MarkFound(ctx context.Context, id int) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 || s.reports[i].Status == model.StatusFound {
		s.mu.Unlock()
		return false
	}
	s.reports[i].Status = model.StatusFound
	s.mu.Unlock()

	for _, m := range s.mirrors {
		if err := m.UpdateStatus(ctx, id, model.StatusFound); err != nil {
			s.log.Warn("mirror status update failed", zap.Int("report_id", id), zap.Error(err))
		}
	}
	s.log.Info("report marked found", zap.Int("report_id", id))
	return true
}

// All returns a copy of the collection in display order.
func (s *ReportStore) All() []model.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Report(nil), s.reports...)
}

func (s *ReportStore) Get(id int) (model.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.reports[i], true
	}
	return model.Report{}, false
}

func (s *ReportStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}

type Stats struct {
	Total  int                      `json:"total_signalements"`
	Active int                      `json:"active_signalements"`
	Found  int                      `json:"found_items"`
	ByType map[model.ReportType]int `json:"active_by_type"`
}

// Stats counts reports by status, and active reports by type.
func (s *ReportStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Stats{Total: len(s.reports), ByType: make(map[model.ReportType]int, len(model.ReportTypes))}
	for _, t := range model.ReportTypes {
		st.ByType[t] = 0
	}
	for _, r := range s.reports {
		if r.Status == model.StatusFound {
			st.Found++
			continue
		}
		st.Active++
		st.ByType[r.Type]++
	}
	return st
}

func (s *ReportStore) maxID() int {
	highest := 0
	for _, r := range s.reports {
		if r.ID > highest {
			highest = r.ID
		}
	}
	return highest
}

func (s *ReportStore) indexOf(id int) int {
	for i, r := range s.reports {
		if r.ID == id {
			return i
		}
	}
	return -1
}

var typeImages = map[model.ReportType][]string{
	model.TypeLost: {
		"https://images.unsplash.com/photo-1589829545856-d10d557cf95f?ixlib=rb-4.0.3&auto=format&fit=crop&w=700&q=80",
		"https://images.unsplash.com/photo-1594736797933-d07d5d6c7c84?ixlib=rb-4.0.3&auto=format&fit=crop&w=700&q=80",
		"https://images.unsplash.com/photo-1582550945154-66ea8fff47e2?ixlib=rb-4.0.3&auto=format&fit=crop&w=700&q=80",
	},
	model.TypeMissing: {
		"https://images.unsplash.com/photo-1551836026-d5c2c5af78e4?ixlib=rb-4.0.3&auto=format&fit=crop&w=700&q=80",
		"https://images.unsplash.com/photo-1517841905240-472988babdf9?ixlib=rb-4.0.3&auto=format&fit=crop&w=700&q=80",
		"https://images.unsplash.com/photo-1524504388940-b1c1722653e1?ixlib=rb-4.0.3&auto=format&fit=crop&w=700&q=80",
	},
	model.TypeStolen: {
		"https://images.unsplash.com/photo-1563013544-824ae1b704d3?ixlib=rb-4.0.3&auto=format&fit=crop&w=700&q=80",
		"https://images.unsplash.com/photo-1586105251261-72a756497a11?ixlib=rb-4.0.3&auto=format&fit=crop&w=700&q=80",
		"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=700&q=80",
	},
}

// ImagesFor returns the image pool for a type. Unknown types share the lost pool.
func ImagesFor(t model.ReportType) []string {
	if imgs, ok := typeImages[t]; ok {
		return imgs
	}
	return typeImages[model.TypeLost]
}

// RandomImage is the default ImagePicker.
func RandomImage(t model.ReportType) string {
	imgs := ImagesFor(t)
	return imgs[rand.Intn(len(imgs))]
}
