package view

import (
	"signalalert/model"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func report() model.Report {
	return model.Report{
		ID:          1,
		Type:        model.TypeLost,
		Title:       "Montre bracelet en or",
		Location:    "Cotonou, Marché Dantokpa",
		Date:        time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
		Category:    "Bijoux",
		Description: "Montre perdue.",
		Contact:     "akpan.b@email.com",
		Reward:      "50000 CFA",
		Status:      model.StatusActive,
		Image:       "montre.jpg",
	}
}

func TestCard(t *testing.T) {
	c := Card(report())

	assert.Equal(t, "Objet perdu", c.BadgeLabel)
	assert.Equal(t, "badge-lost", c.BadgeClass)
	assert.False(t, c.FoundBadgeVisible)
	assert.Equal(t, "15 juin 2023", c.FormattedDate)
	assert.Equal(t, "Bijoux", c.Category)
	assert.Equal(t, 1, c.ActionTargetID)
	assert.Equal(t, "Montre perdue.", c.Description)
}

func TestBadgeLabels(t *testing.T) {
	tests := []struct {
		rt    model.ReportType
		label string
		class string
	}{
		{model.TypeLost, "Objet perdu", "badge-lost"},
		{model.TypeMissing, "Personne disparue", "badge-missing"},
		{model.TypeStolen, "Chose volée", "badge-stolen"},
		{"found", "", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.rt), func(t *testing.T) {
			r := report()
			r.Type = tt.rt
			c := Card(r)
			assert.Equal(t, tt.label, c.BadgeLabel)
			assert.Equal(t, tt.class, c.BadgeClass)
		})
	}
}

func TestCardFoundBadge(t *testing.T) {
	r := report()
	r.Status = model.StatusFound
	assert.True(t, Card(r).FoundBadgeVisible)
}

func TestCardTruncatesDescription(t *testing.T) {
	r := report()
	r.Description = strings.Repeat("é", 300)

	c := Card(r)
	assert.True(t, strings.HasSuffix(c.Description, "…"))
	assert.Equal(t, DescriptionWidth, utf8.RuneCountInString(c.Description))
	assert.Equal(t, r.Description, Detail(r, nil).FullDescription)
}

func TestDetail(t *testing.T) {
	d := Detail(report(), nil)

	assert.Equal(t, "jeudi 15 juin 2023", d.LongDate)
	assert.Equal(t, "akpan.b@email.com", d.Contact)
	require.NotNil(t, d.Reward)
	assert.Equal(t, "50000 CFA", d.Reward.Amount)
	require.NotNil(t, d.MarkFound)
	assert.Equal(t, "/api/signalements/1/found", d.MarkFound.Href)
	assert.Equal(t, "/api/signalements/1/share", d.Share.Href)
	assert.Empty(t, d.FoundLabel)
}

func TestDetailReward(t *testing.T) {
	r := report()
	r.Reward = ""
	assert.Nil(t, Detail(r, nil).Reward)

	r.Reward = "50000 CFA"
	require.NotNil(t, Detail(r, nil).Reward)
	assert.Equal(t, "50000 CFA", Detail(r, nil).Reward.Amount)
}

func TestDetailFoundHasNoMarkAction(t *testing.T) {
	r := report()
	r.Status = model.StatusFound

	d := Detail(r, nil)
	assert.Nil(t, d.MarkFound)
	assert.Equal(t, "Retrouvé/Résolu", d.FoundLabel)
	assert.Equal(t, "Partager", d.Share.Label)
}

func TestFrenchDates(t *testing.T) {
	d := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1 août 2024", FrenchDate(d))
	assert.Equal(t, "jeudi 1 août 2024", FrenchLongDate(d))
	assert.Empty(t, FrenchDate(time.Time{}))
	assert.Empty(t, FrenchLongDate(time.Time{}))
}

func TestDetailComments(t *testing.T) {
	comments := []model.Comment{
		{CommentID: 2, Author: "koffi", Content: "Vu hier", CreatedAt: time.Date(2023, 6, 17, 9, 0, 0, 0, time.UTC)},
		{CommentID: 1, Author: "awa", Content: "Je cherche aussi", CreatedAt: time.Date(2023, 6, 16, 9, 0, 0, 0, time.UTC)},
	}
	d := Detail(report(), comments)

	require.Len(t, d.Comments, 2)
	assert.Equal(t, 2, d.Comments[0].ID)
	assert.Equal(t, "koffi", d.Comments[0].Author)
	assert.Equal(t, "17 juin 2023", d.Comments[0].FormattedDate)
	assert.Equal(t, "/api/signalements/1/comments", d.CommentAction.Href)

	assert.NotNil(t, Detail(report(), nil).Comments)
}
