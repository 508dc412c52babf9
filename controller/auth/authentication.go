package auth

import (
	"errors"
	"net/http"
	"signalalert/dto"
	"signalalert/middleware"
	"signalalert/model"
	"signalalert/store"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// TokenTTL is the lifetime of the access token and its cookie.
const TokenTTL = 24 * time.Hour

func AuthController(router *gin.Engine, users *store.UserStore, secret []byte, log *zap.Logger) {
	routes := router.Group("/api")
	{
		routes.POST("/login", func(c *gin.Context) {
			Login(c, users, secret, log)
		})
		routes.POST("/logout", func(c *gin.Context) {
			Logout(c)
		})
	}
}

func CreateAccessToken(userID uint, role string, secret []byte) (string, error) {
	claims := &model.AccessClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "signalalert",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func Login(c *gin.Context, users *store.UserStore, secret []byte, log *zap.Logger) {
	var request dto.LoginRequest
	if err := c.ShouldBind(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis", "details": err.Error()})
		return
	}

	user, err := users.Authenticate(request.Email, request.Password)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) || errors.Is(err, store.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de connexion", "details": err.Error()})
		return
	}

	accessToken, err := CreateAccessToken(uint(user.UserID), user.Role, secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, accessToken, int(TokenTTL.Seconds()), "/", "", false, true)
	log.Info("user signed in", zap.Int("user_id", user.UserID))

	c.JSON(http.StatusOK, gin.H{
		"message":     "Connexion réussie",
		"accessToken": accessToken,
		"user":        user,
	})
}

func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Déconnexion réussie"})
}
