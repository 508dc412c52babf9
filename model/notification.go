package model

import (
	"time"
)

type Notification struct {
	NotificationID string    `firestore:"notification_id" json:"id"`
	UserID         int       `firestore:"user_id" json:"-"`
	Type           string    `firestore:"type" json:"type"`
	Title          string    `firestore:"title" json:"title"`
	Content        string    `firestore:"content" json:"content"`
	RelatedID      int       `firestore:"related_id" json:"related_id,omitempty"`
	IsRead         bool      `firestore:"is_read" json:"is_read"`
	IsSent         bool      `firestore:"is_sent" json:"-"`
	CreatedAt      time.Time `firestore:"created_at" json:"created_at"`
}
