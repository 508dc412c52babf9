package services

import (
	"context"
	"fmt"
	"signalalert/model"

	"cloud.google.com/go/firestore"
)

const reportsCollection = "Signalements"

// FirestoreMirror keeps one document per report under Signalements/<type>.
type FirestoreMirror struct {
	client *firestore.Client
}

func NewFirestoreMirror(client *firestore.Client) *FirestoreMirror {
	return &FirestoreMirror{client: client}
}

func reportDoc(client *firestore.Client, id int) *firestore.DocumentRef {
	return client.Collection(reportsCollection).Doc(fmt.Sprintf("report_%d", id))
}

func (m *FirestoreMirror) SaveReport(ctx context.Context, report model.Report) error {
	data := map[string]interface{}{
		"ReportID":    report.ID,
		"Type":        string(report.Type),
		"Title":       report.Title,
		"Location":    report.Location,
		"Date":        report.Date,
		"Category":    report.Category,
		"Description": report.Description,
		"Contact":     report.Contact,
		"Reward":      report.Reward,
		"Status":      string(report.Status),
		"Image":       report.Image,
		"CreateAt":    report.CreatedAt,
	}
	if report.HasLocation() {
		data["Lat"] = *report.Lat
		data["Lng"] = *report.Lng
	}
	_, err := reportDoc(m.client, report.ID).Set(ctx, data)
	return err
}

func (m *FirestoreMirror) UpdateStatus(ctx context.Context, id int, status model.ReportStatus) error {
	_, err := reportDoc(m.client, id).Set(ctx, map[string]interface{}{
		"Status": string(status),
	}, firestore.MergeAll)
	return err
}
