package connection

import (
	"context"
	"fmt"
	"signalalert/config"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBConnection opens the MySQL mirror. It returns nil when DB_DSN is unset.
func DBConnection(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBDSN == "" {
		return nil, nil
	}
	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	return db, nil
}

// FBConnection opens Firestore with the service account file. It returns nil
// when no credentials are configured.
func FBConnection(ctx context.Context, cfg *config.Config, log *zap.Logger) (*firestore.Client, error) {
	if !cfg.FirebaseEnabled() {
		return nil, nil
	}
	client, err := firestore.NewClient(ctx, cfg.FirestoreProjID, option.WithCredentialsFile(cfg.FirebaseCreds))
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	log.Info("firestore connected", zap.String("project", cfg.FirestoreProjID))
	return client, nil
}
