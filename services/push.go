package services

import (
	"context"
	"fmt"
	"signalalert/model"
	"signalalert/store"
	"strconv"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Sender delivers one notification to its recipient.
type Sender interface {
	Send(ctx context.Context, n model.Notification) error
}

// LogSender only logs notifications. Used when FCM is not configured.
type LogSender struct {
	Log *zap.Logger
}

func (s LogSender) Send(_ context.Context, n model.Notification) error {
	s.Log.Info("notification",
		zap.String("id", n.NotificationID),
		zap.Int("user_id", n.UserID),
		zap.String("title", n.Title))
	return nil
}

func InitializeFirebaseApp(ctx context.Context, serviceAccountKeyPath string) (*firebase.App, error) {
	opt := option.WithCredentialsFile(serviceAccountKeyPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing app: %v", err)
	}
	return app, nil
}

// FCMSender pushes notifications to the device registered in usersLogin/<email>.
type FCMSender struct {
	messaging *messaging.Client
	firestore *firestore.Client
	users     *store.UserStore
}

func NewFCMSender(ctx context.Context, app *firebase.App, fs *firestore.Client, users *store.UserStore) (*FCMSender, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Messaging client: %v", err)
	}
	return &FCMSender{messaging: client, firestore: fs, users: users}, nil
}

func (s *FCMSender) token(ctx context.Context, userID int) (string, error) {
	user, ok := s.users.ByID(userID)
	if !ok {
		return "", store.ErrUserNotFound
	}
	doc, err := s.firestore.Collection("usersLogin").Doc(user.Email).Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get document: %v", err)
	}
	if !doc.Exists() {
		return "", fmt.Errorf("user login data not found")
	}
	token, ok := doc.Data()["FMCToken"].(string)
	if !ok || token == "" {
		return "", fmt.Errorf("invalid or empty FCM token")
	}
	return token, nil
}

func (s *FCMSender) Send(ctx context.Context, n model.Notification) error {
	token, err := s.token(ctx, n.UserID)
	if err != nil {
		return err
	}
	_, err = s.messaging.Send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Content,
		},
		Data: map[string]string{
			"notification_id": n.NotificationID,
			"type":            n.Type,
			"related_id":      strconv.Itoa(n.RelatedID),
		},
	})
	return err
}

// DispatchPending sends every undelivered notification once. Failed sends stay
// pending for the next run.
func DispatchPending(ctx context.Context, inbox *store.NotificationStore, sender Sender, log *zap.Logger) int {
	sent := 0
	for _, n := range inbox.Pending() {
		if n.UserID == 0 {
			inbox.MarkSent(n.NotificationID)
			continue
		}
		if err := sender.Send(ctx, n); err != nil {
			log.Warn("notification push failed", zap.String("id", n.NotificationID), zap.Error(err))
			continue
		}
		inbox.MarkSent(n.NotificationID)
		sent++
	}
	return sent
}
