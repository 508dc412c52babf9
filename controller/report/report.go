package report

import (
	"errors"
	"fmt"
	"net/http"
	"signalalert/dto"
	"signalalert/listing"
	"signalalert/middleware"
	"signalalert/model"
	"signalalert/store"
	"signalalert/view"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps are the stores the report routes work on.
type Deps struct {
	Reports  *store.ReportStore
	Comments *store.CommentStore
	Users    *store.UserStore
	Inbox    *store.NotificationStore
}

func ReportController(router *gin.Engine, deps Deps, secret []byte, log *zap.Logger) {
	reports := deps.Reports
	routes := router.Group("/api")
	{
		routes.GET("/signalements", func(c *gin.Context) {
			ListReports(c, reports)
		})
		routes.GET("/signalements/locations", func(c *gin.Context) {
			ReadLocations(c, reports)
		})
		routes.GET("/signalements/:id", func(c *gin.Context) {
			ReadReport(c, reports, deps.Comments)
		})
		routes.POST("/signalements", middleware.OptionalAccessToken(secret), func(c *gin.Context) {
			CreateReport(c, reports)
		})
		routes.PUT("/signalements/:id/found", func(c *gin.Context) {
			MarkFound(c, reports)
		})
		routes.POST("/signalements/:id/comments", middleware.AccessTokenMiddleware(secret), func(c *gin.Context) {
			CreateComment(c, deps, log)
		})
		routes.POST("/signalements/:id/share", func(c *gin.Context) {
			ShareReport(c, reports)
		})
		routes.GET("/stats", func(c *gin.Context) {
			c.JSON(http.StatusOK, reports.Stats())
		})
	}
}

// ListPage runs the listing pipeline for one query.
func ListPage(reports *store.ReportStore, q dto.ListReportsQuery) (listing.Page, int, error) {
	filter, err := listing.ParseFilter(q.Filter)
	if err != nil {
		return listing.Page{}, 0, err
	}
	from, err := listing.ParseDay(q.StartDate)
	if err != nil {
		return listing.Page{}, 0, err
	}
	to, err := listing.ParseDay(q.EndDate)
	if err != nil {
		return listing.Page{}, 0, err
	}
	limit := listing.ClampLimit(q.Limit)
	query := listing.Query{Search: q.Search, Category: q.Category, From: from, To: to}
	narrowed := query.Apply(reports.All())
	return listing.Paginate(narrowed, filter, limit), limit, nil
}

func ListReports(c *gin.Context, reports *store.ReportStore) {
	var query dto.ListReportsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query", "details": err.Error()})
		return
	}
	page, limit, err := ListPage(reports, query)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reports":    view.Cards(page.Reports),
		"has_more":   page.HasMore,
		"total":      page.Total,
		"limit":      limit,
		"next_limit": page.NextLimit(limit),
	})
}

func reportID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return 0, false
	}
	return id, true
}

func ReadReport(c *gin.Context, reports *store.ReportStore, comments *store.CommentStore) {
	id, ok := reportID(c)
	if !ok {
		return
	}
	report, found := reports.Get(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Signalement introuvable"})
		return
	}
	c.JSON(http.StatusOK, view.Detail(report, comments.ForReport(id)))
}

// NewReport converts a validated request into a report ready for the store.
func NewReport(req dto.CreateReportRequest, userID int) (model.Report, error) {
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return model.Report{}, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}
	reportType, ok := model.ParseReportType(req.Type)
	if !ok {
		return model.Report{}, errors.New("invalid report type")
	}
	return model.Report{
		Type:        reportType,
		Title:       req.Title,
		Location:    req.Location,
		Date:        date,
		Category:    req.Category,
		Description: req.Description,
		Contact:     req.Contact,
		Reward:      req.Reward,
		Image:       req.Image,
		Lat:         req.Lat,
		Lng:         req.Lng,
		UserID:      userID,
	}, nil
}

func CreateReport(c *gin.Context, reports *store.ReportStore) {
	var request dto.CreateReportRequest
	if err := c.ShouldBind(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}
	report, err := NewReport(request, middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	stored := reports.Add(c.Request.Context(), report)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Signalement créé avec succès",
		"report":  view.Detail(stored, nil),
	})
}

// MarkFound answers 200 even for an unknown id.
func MarkFound(c *gin.Context, reports *store.ReportStore) {
	id, ok := reportID(c)
	if !ok {
		return
	}
	reports.MarkFound(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"message": "Signalement marqué comme retrouvé"})
}

// CreateComment stores a comment from the signed-in caller and notifies the
// report author, unless the author comments on their own report.
func CreateComment(c *gin.Context, deps Deps, log *zap.Logger) {
	id, ok := reportID(c)
	if !ok {
		return
	}
	report, found := deps.Reports.Get(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Signalement introuvable"})
		return
	}

	var request dto.CommentRequest
	if err := c.ShouldBind(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le commentaire ne peut pas être vide.", "details": err.Error()})
		return
	}
	content := strings.TrimSpace(request.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le commentaire ne peut pas être vide."})
		return
	}

	userID := middleware.UserID(c)
	author := "Anonyme"
	if user, ok := deps.Users.ByID(userID); ok {
		author = user.Username
	}
	comment := deps.Comments.Add(id, userID, author, content)

	if report.UserID != 0 && report.UserID != userID {
		n := deps.Inbox.Push(report.UserID, "comment",
			fmt.Sprintf("%s a commenté votre signalement : \"%s\"", author, report.Title),
			content,
			report.ID)
		log.Debug("author notified", zap.Int("report_id", id), zap.String("notification_id", n.NotificationID))
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Votre commentaire a été ajouté.",
		"comment": comment,
	})
}

func ShareReport(c *gin.Context, reports *store.ReportStore) {
	id, ok := reportID(c)
	if !ok {
		return
	}
	if _, found := reports.Get(id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Signalement introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": view.ShareMessage})
}

func ReadLocations(c *gin.Context, reports *store.ReportStore) {
	locations := make([]dto.LocationResponse, 0)
	for _, r := range reports.All() {
		if !r.HasLocation() {
			continue
		}
		locations = append(locations, dto.LocationResponse{
			ID:    r.ID,
			Title: r.Title,
			Type:  string(r.Type),
			Lat:   *r.Lat,
			Lng:   *r.Lng,
		})
	}
	c.JSON(http.StatusOK, locations)
}
