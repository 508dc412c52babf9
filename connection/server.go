package connection

import (
	"context"
	"log"
	"net/http"
	"signalalert/config"
	"signalalert/controller/auth"
	mapctl "signalalert/controller/mapview"
	"signalalert/controller/notification"
	"signalalert/controller/page"
	"signalalert/controller/report"
	"signalalert/dto"
	"signalalert/logging"
	"signalalert/mapview"
	"signalalert/middleware"
	"signalalert/scheduler"
	"signalalert/seed"
	"signalalert/services"
	"signalalert/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// App holds the stores and collaborators shared by the controllers.
type App struct {
	Config        *config.Config
	Log           *zap.Logger
	Reports       *store.ReportStore
	Comments      *store.CommentStore
	Users         *store.UserStore
	Notifications *store.NotificationStore
	Sender        services.Sender
}

// NewRouter registers every route on a fresh engine.
func NewRouter(app *App) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(app.Log))

	if len(app.Config.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = app.Config.CORSOrigins
		corsCfg.AllowCredentials = true
		corsCfg.AddAllowHeaders("Authorization")
		router.Use(cors.New(corsCfg))
	} else {
		router.Use(cors.Default())
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Api is running!"})
	})

	secret := []byte(app.Config.JWTSecret)
	dto.RegisterValidations()

	page.PageController(router, app.Reports, app.Comments)
	report.ReportController(router, report.Deps{
		Reports:  app.Reports,
		Comments: app.Comments,
		Users:    app.Users,
		Inbox:    app.Notifications,
	}, secret, app.Log)
	auth.AuthController(router, app.Users, secret, app.Log)
	notification.NotificationController(router, app.Notifications, secret)
	mapctl.MapController(router, mapview.NewAdapter(nil, app.Config.MapLocationsURL, app.Log))

	return router
}

func StartServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	app, err := buildApp(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}

	cron, err := scheduler.StartScheduler(cfg.NotifyCron, app.Notifications, app.Sender, logger)
	if err != nil {
		logger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer cron.Stop()

	logger.Info("server listening", zap.String("port", cfg.Port))
	if err := NewRouter(app).Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func buildApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	reports, err := seed.Reports()
	if err != nil {
		return nil, err
	}
	opts := []store.Option{store.WithLogger(logger)}

	db, err := DBConnection(cfg)
	if err != nil {
		return nil, err
	}
	if db != nil {
		mirror, err := services.NewGormMirror(db)
		if err != nil {
			return nil, err
		}
		persisted, err := mirror.LoadReports(ctx)
		if err != nil {
			return nil, err
		}
		if len(persisted) > 0 {
			reports = persisted
		} else {
			for _, r := range reports {
				if err := mirror.SaveReport(ctx, r); err != nil {
					return nil, err
				}
			}
		}
		opts = append(opts, store.WithMirror(mirror))
		logger.Info("mysql mirror enabled", zap.Int("reports", len(reports)))
	}

	users := store.NewUserStore()
	if cfg.AdminPassword != "" {
		if _, err := users.Register("admin", cfg.AdminEmail, cfg.AdminPassword, "admin"); err != nil {
			return nil, err
		}
	} else {
		logger.Warn("ADMIN_PASSWORD is not set, login is disabled")
	}

	var sender services.Sender = services.LogSender{Log: logger}
	fb, err := FBConnection(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if fb != nil {
		opts = append(opts, store.WithMirror(services.NewFirestoreMirror(fb)))
		fbApp, err := services.InitializeFirebaseApp(ctx, cfg.FirebaseCreds)
		if err != nil {
			return nil, err
		}
		fcm, err := services.NewFCMSender(ctx, fbApp, fb, users)
		if err != nil {
			return nil, err
		}
		sender = fcm
	}

	return &App{
		Config:        cfg,
		Log:           logger,
		Reports:       store.New(reports, opts...),
		Comments:      store.NewCommentStore(),
		Users:         users,
		Notifications: store.NewNotificationStore(),
		Sender:        sender,
	}, nil
}
