package view

import (
	"fmt"
	"net/http"
	"signalalert/model"
)

// ShareMessage is the answer of the share action, which only simulates sharing.
const ShareMessage = "Fonction de partage (simulation) - Le signalement serait partagé sur les réseaux sociaux"

type Action struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Method string `json:"method"`
	Href   string `json:"href"`
}

type RewardBlock struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

type CommentView struct {
	ID            int    `json:"id"`
	Author        string `json:"author"`
	Content       string `json:"content"`
	FormattedDate string `json:"formatted_date"`
}

type DetailView struct {
	CardView
	LongDate        string        `json:"long_date"`
	FoundLabel      string        `json:"found_label,omitempty"`
	FullDescription string        `json:"full_description"`
	Contact         string        `json:"contact"`
	Reward          *RewardBlock  `json:"reward,omitempty"`
	MarkFound       *Action       `json:"mark_found,omitempty"`
	Share           Action        `json:"share"`
	Comments        []CommentView `json:"comments"`
	CommentAction   Action        `json:"comment"`
}

// Detail builds the full view of one report. comments are expected newest
// first and keep their order.
func Detail(r model.Report, comments []model.Comment) DetailView {
	d := DetailView{
		CardView:        Card(r),
		LongDate:        FrenchLongDate(r.Date),
		FullDescription: r.Description,
		Contact:         r.Contact,
		Share: Action{
			Name:   "share",
			Label:  "Partager",
			Method: http.MethodPost,
			Href:   fmt.Sprintf("/api/signalements/%d/share", r.ID),
		},
		CommentAction: Action{
			Name:   "comment",
			Label:  "Commenter",
			Method: http.MethodPost,
			Href:   fmt.Sprintf("/api/signalements/%d/comments", r.ID),
		},
		Comments: make([]CommentView, 0, len(comments)),
	}
	for _, c := range comments {
		d.Comments = append(d.Comments, CommentView{
			ID:            c.CommentID,
			Author:        c.Author,
			Content:       c.Content,
			FormattedDate: FrenchDate(c.CreatedAt),
		})
	}
	if r.Reward != "" {
		d.Reward = &RewardBlock{Label: "Récompense", Amount: r.Reward}
	}
	if r.Status == model.StatusFound {
		d.FoundLabel = "Retrouvé/Résolu"
	} else {
		d.MarkFound = &Action{
			Name:   "mark_found",
			Label:  "Marquer comme retrouvé",
			Method: http.MethodPut,
			Href:   fmt.Sprintf("/api/signalements/%d/found", r.ID),
		}
	}
	return d
}
