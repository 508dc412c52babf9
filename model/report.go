// model/report.go
package model

import (
	"time"
)

type ReportType string

const (
	TypeLost    ReportType = "lost"
	TypeMissing ReportType = "missing"
	TypeStolen  ReportType = "stolen"
)

// ReportTypes lists the known types in display order.
var ReportTypes = []ReportType{TypeLost, TypeMissing, TypeStolen}

func (t ReportType) Valid() bool {
	switch t {
	case TypeLost, TypeMissing, TypeStolen:
		return true
	}
	return false
}

// ParseReportType returns the type named by s and whether it is a known one.
func ParseReportType(s string) (ReportType, bool) {
	t := ReportType(s)
	return t, t.Valid()
}

type ReportStatus string

const (
	StatusActive ReportStatus = "active"
	StatusFound  ReportStatus = "found"
)

type Report struct {
	ID          int          `gorm:"column:report_id;primaryKey;autoIncrement:false" json:"id"`
	Type        ReportType   `gorm:"column:type;type:enum('lost','missing','stolen');not null" json:"type"`
	Title       string       `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Location    string       `gorm:"column:location;type:varchar(200);not null" json:"location"`
	Date        time.Time    `gorm:"column:date;type:date;not null" json:"date"`
	Category    string       `gorm:"column:category;type:varchar(50)" json:"category"`
	Description string       `gorm:"column:description;type:text;not null" json:"description"`
	Contact     string       `gorm:"column:contact;type:varchar(200)" json:"contact"`
	Reward      string       `gorm:"column:reward;type:varchar(100)" json:"reward"`
	Status      ReportStatus `gorm:"column:status;type:enum('active','found');default:'active';not null" json:"status"`
	Image       string       `gorm:"column:image_url;type:varchar(500)" json:"image"`
	Lat         *float64     `gorm:"column:lat" json:"lat,omitempty"`
	Lng         *float64     `gorm:"column:lng" json:"lng,omitempty"`
	UserID      int          `gorm:"column:user_id" json:"user_id,omitempty"`
	CreatedAt   time.Time    `gorm:"column:created_at" json:"created_at"`
}

func (Report) TableName() string {
	return "signalements"
}

// HasLocation reports whether both coordinates are set.
func (r Report) HasLocation() bool {
	return r.Lat != nil && r.Lng != nil
}
