// Package view turns reports into render-ready view-models.
package view

import (
	"signalalert/model"

	"github.com/mattn/go-runewidth"
)

// DescriptionWidth is the display width of a card description.
const DescriptionWidth = 120

type CardView struct {
	ID                int    `json:"id"`
	Type              string `json:"type"`
	Title             string `json:"title"`
	Location          string `json:"location"`
	Image             string `json:"image"`
	BadgeLabel        string `json:"badge_label"`
	BadgeClass        string `json:"badge_class"`
	FoundBadgeVisible bool   `json:"found_badge_visible"`
	FormattedDate     string `json:"formatted_date"`
	Description       string `json:"description"`
	Category          string `json:"category"`
	ActionTargetID    int    `json:"action_target_id"`
}

// BadgeLabel has no default: an unknown type gets an empty label.
func BadgeLabel(t model.ReportType) string {
	switch t {
	case model.TypeLost:
		return "Objet perdu"
	case model.TypeMissing:
		return "Personne disparue"
	case model.TypeStolen:
		return "Chose volée"
	}
	return ""
}

func BadgeClass(t model.ReportType) string {
	if !t.Valid() {
		return ""
	}
	return "badge-" + string(t)
}

// Card builds the summary shown in the listing.
func Card(r model.Report) CardView {
	return CardView{
		ID:                r.ID,
		Type:              string(r.Type),
		Title:             r.Title,
		Location:          r.Location,
		Image:             r.Image,
		BadgeLabel:        BadgeLabel(r.Type),
		BadgeClass:        BadgeClass(r.Type),
		FoundBadgeVisible: r.Status == model.StatusFound,
		FormattedDate:     FrenchDate(r.Date),
		Description:       runewidth.Truncate(r.Description, DescriptionWidth, "…"),
		Category:          r.Category,
		ActionTargetID:    r.ID,
	}
}

func Cards(rs []model.Report) []CardView {
	out := make([]CardView, 0, len(rs))
	for _, r := range rs {
		out = append(out, Card(r))
	}
	return out
}
