package mapview

import (
	"net/http"
	"signalalert/mapview"

	"github.com/gin-gonic/gin"
)

func MapController(router *gin.Engine, adapter *mapview.Adapter) {
	router.GET("/api/map", func(c *gin.Context) {
		ReadMap(c, adapter)
	})
}

// ReadMap fills a fresh cluster group from the locations feed. A feed failure
// still answers 200 with the notice in the view.
func ReadMap(c *gin.Context, adapter *mapview.Adapter) {
	group := mapview.NewClusterGroup()
	adapter.Activate(c.Request.Context(), group)
	c.JSON(http.StatusOK, group.View())
}
