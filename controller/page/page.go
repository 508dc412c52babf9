package page

import (
	"embed"
	"html/template"
	"net/http"
	"signalalert/controller/report"
	"signalalert/dto"
	"signalalert/listing"
	"signalalert/store"
	"signalalert/view"
	"strconv"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templates embed.FS

type filterButton struct {
	Value  string
	Label  string
	Active bool
}

var filterLabels = []struct{ value, label string }{
	{"all", "Tous"},
	{"lost", "Objets perdus"},
	{"missing", "Personnes disparues"},
	{"stolen", "Choses volées"},
	{"found", "Retrouvés"},
}

// PageController serves the HTML listing and report pages. It installs the
// page templates on the router.
func PageController(router *gin.Engine, reports *store.ReportStore, comments *store.CommentStore) {
	router.SetHTMLTemplate(template.Must(template.ParseFS(templates, "templates/*.tmpl")))
	router.GET("/", func(c *gin.Context) {
		Index(c, reports)
	})
	router.GET("/signalement/:id", func(c *gin.Context) {
		Detail(c, reports, comments)
	})
}

func Index(c *gin.Context, reports *store.ReportStore) {
	var query dto.ListReportsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.String(http.StatusBadRequest, "Requête invalide")
		return
	}
	page, limit, err := report.ListPage(reports, query)
	if err != nil {
		c.String(http.StatusBadRequest, "Filtre ou date invalide")
		return
	}

	filter := query.Filter
	if filter == "" {
		filter = string(listing.FilterAll)
	}
	buttons := make([]filterButton, 0, len(filterLabels))
	for _, f := range filterLabels {
		buttons = append(buttons, filterButton{Value: f.value, Label: f.label, Active: f.value == filter})
	}

	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Cards":     view.Cards(page.Reports),
		"Filters":   buttons,
		"Filter":    filter,
		"NextLimit": page.NextLimit(limit),
		"Stats":     reports.Stats(),
	})
}

func Detail(c *gin.Context, reports *store.ReportStore, comments *store.CommentStore) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Identifiant invalide")
		return
	}
	signalement, found := reports.Get(id)
	if !found {
		c.String(http.StatusNotFound, "Signalement introuvable")
		return
	}
	c.HTML(http.StatusOK, "detail.tmpl", view.Detail(signalement, comments.ForReport(id)))
}
