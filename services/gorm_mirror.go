package services

import (
	"context"
	"signalalert/model"

	"gorm.io/gorm"
)

// GormMirror copies store changes into the signalements table.
type GormMirror struct {
	db *gorm.DB
}

func NewGormMirror(db *gorm.DB) (*GormMirror, error) {
	if err := db.AutoMigrate(&model.Report{}); err != nil {
		return nil, err
	}
	return &GormMirror{db: db}, nil
}

func (m *GormMirror) SaveReport(ctx context.Context, report model.Report) error {
	return m.db.WithContext(ctx).Create(&report).Error
}

func (m *GormMirror) UpdateStatus(ctx context.Context, id int, status model.ReportStatus) error {
	return m.db.WithContext(ctx).
		Model(&model.Report{}).
		Where("report_id = ?", id).
		Update("status", status).Error
}

// newestFirst orders rows the way the store displays them. Ids only break
// ties: seeded ids grow towards older reports.
func (m *GormMirror) newestFirst(ctx context.Context) *gorm.DB {
	return m.db.WithContext(ctx).Order("created_at DESC, report_id DESC")
}

// LoadReports returns the persisted reports, newest first.
func (m *GormMirror) LoadReports(ctx context.Context) ([]model.Report, error) {
	var reports []model.Report
	if err := m.newestFirst(ctx).Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
