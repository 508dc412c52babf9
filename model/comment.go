package model

import "time"

type Comment struct {
	CommentID int       `json:"id"`
	ReportID  int       `json:"report_id"`
	UserID    int       `json:"user_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
