package notification

import (
	"errors"
	"net/http"
	"signalalert/middleware"
	"signalalert/store"

	"github.com/gin-gonic/gin"
)

func NotificationController(router *gin.Engine, inbox *store.NotificationStore, secret []byte) {
	routes := router.Group("/api/notifications", middleware.AccessTokenMiddleware(secret))
	{
		routes.GET("", func(c *gin.Context) {
			ListNotifications(c, inbox)
		})
		routes.GET("/unread", func(c *gin.Context) {
			UnreadNotifications(c, inbox)
		})
		routes.PUT("/:id/read", func(c *gin.Context) {
			ReadNotification(c, inbox)
		})
	}
}

func ListNotifications(c *gin.Context, inbox *store.NotificationStore) {
	c.JSON(http.StatusOK, inbox.ForUser(middleware.UserID(c)))
}

func UnreadNotifications(c *gin.Context, inbox *store.NotificationStore) {
	c.JSON(http.StatusOK, gin.H{"unread": store.UnreadCount(inbox.ForUser(middleware.UserID(c)))})
}

func ReadNotification(c *gin.Context, inbox *store.NotificationStore) {
	err := inbox.MarkRead(middleware.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
