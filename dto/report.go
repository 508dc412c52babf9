package dto

type CreateReportRequest struct {
	Type        string   `json:"type" form:"type" binding:"required,reporttype"`
	Title       string   `json:"title" form:"title" binding:"required"`
	Location    string   `json:"location" form:"location" binding:"required"`
	Date        string   `json:"date" form:"date" binding:"required,datetime=2006-01-02"`
	Category    string   `json:"category" form:"category" binding:"required"`
	Description string   `json:"description" form:"description" binding:"required"`
	Contact     string   `json:"contact" form:"contact" binding:"required"`
	Reward      string   `json:"reward" form:"reward"`
	Image       string   `json:"image" form:"image" binding:"omitempty,url"`
	Lat         *float64 `json:"lat" form:"lat" binding:"omitempty,latitude"`
	Lng         *float64 `json:"lng" form:"lng" binding:"omitempty,longitude"`
}

type ListReportsQuery struct {
	Filter    string `form:"filter"`
	Limit     int    `form:"limit"`
	Search    string `form:"search"`
	Category  string `form:"category"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

type LocationResponse struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Type  string  `json:"type"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

type CommentRequest struct {
	Content string `json:"comment_content" form:"comment_content" binding:"required"`
}
