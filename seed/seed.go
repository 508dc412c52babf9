// Package seed holds the reports loaded at startup.
package seed

import (
	_ "embed"
	"fmt"
	"signalalert/model"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed reports.yaml
var reportsYAML []byte

type entry struct {
	ID          int      `yaml:"id"`
	Type        string   `yaml:"type"`
	Title       string   `yaml:"title"`
	Location    string   `yaml:"location"`
	Date        string   `yaml:"date"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	Contact     string   `yaml:"contact"`
	Reward      string   `yaml:"reward"`
	Status      string   `yaml:"status"`
	Image       string   `yaml:"image"`
	Lat         *float64 `yaml:"lat"`
	Lng         *float64 `yaml:"lng"`
}

// Reports decodes the embedded dataset, newest first.
func Reports() ([]model.Report, error) {
	return Parse(reportsYAML)
}

// Parse decodes a YAML list of reports.
func Parse(data []byte) ([]model.Report, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	reports := make([]model.Report, 0, len(entries))
	for _, e := range entries {
		date, err := time.Parse(time.DateOnly, e.Date)
		if err != nil {
			return nil, fmt.Errorf("report %d: invalid date %q: %w", e.ID, e.Date, err)
		}
		status := model.ReportStatus(e.Status)
		if status == "" {
			status = model.StatusActive
		}
		reports = append(reports, model.Report{
			ID:          e.ID,
			Type:        model.ReportType(e.Type),
			Title:       e.Title,
			Location:    e.Location,
			Date:        date,
			Category:    e.Category,
			Description: e.Description,
			Contact:     e.Contact,
			Reward:      e.Reward,
			Status:      status,
			Image:       e.Image,
			Lat:         e.Lat,
			Lng:         e.Lng,
			CreatedAt:   date,
		})
	}
	return reports, nil
}
