package client

import (
	"context"
	"errors"
	"mannamsalon/config"
	"mannamsalon/internal/core"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// FirebaseAuthClient 封裝 Firebase Authentication 管理 API
// 未啟用時 ListUsers 回傳空集合、DeleteUser 視為成功、CreateUser 產生本地 uid
type FirebaseAuthClient struct {
	auth   *auth.Client
	logger *zap.Logger
}

func NewFirebaseAuthClient(logger *zap.Logger, config *config.Configuration) (*FirebaseAuthClient, error) {
	c := &FirebaseAuthClient{logger: logger}
	if !config.Firebase.Enabled {
		logger.Info("Firebase Authentication disabled, using local uids")
		return c, nil
	}

	ctx := context.Background()
	var opts []option.ClientOption
	if config.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.Firebase.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: config.Firebase.ProjectID}, opts...)
	if err != nil {
		logger.Error("failed to init firebase app", zap.Error(err))
		return nil, err
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		logger.Error("failed to init firebase auth client", zap.Error(err))
		return nil, err
	}
	logger.Info("Connected to Firebase Authentication", zap.String("project", config.Firebase.ProjectID))
	c.auth = authClient
	return c, nil
}

func (c *FirebaseAuthClient) Enabled() bool {
	return c.auth != nil
}

// ListUsers 走訪全部帳號（SDK 內部以 1000 筆分頁）
func (c *FirebaseAuthClient) ListUsers(ctx context.Context) ([]core.IdentityUser, error) {
	if !c.Enabled() {
		return nil, nil
	}
	var users []core.IdentityUser
	iter := c.auth.Users(ctx, "")
	for {
		u, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		users = append(users, core.IdentityUser{
			UID:         u.UID,
			Email:       u.Email,
			DisplayName: u.DisplayName,
		})
	}
	return users, nil
}

// DeleteUser 帳號不存在時回傳 core.ErrIdentityUserNotFound
func (c *FirebaseAuthClient) DeleteUser(ctx context.Context, uid string) error {
	if !c.Enabled() {
		return nil
	}
	if err := c.auth.DeleteUser(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return core.ErrIdentityUserNotFound
		}
		return err
	}
	return nil
}

func (c *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if !c.Enabled() {
		return uuid.NewString(), nil
	}
	params := (&auth.UserToCreate{}).DisplayName(displayName)
	if email != "" {
		params = params.Email(email)
	}
	if password != "" {
		params = params.Password(password)
	}
	u, err := c.auth.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}
	return u.UID, nil
}
