package repository

import (
	"context"
	"sync"
	"time"

	"mannamsalon/config"
	"mannamsalon/internal/core"
	client "mannamsalon/internal/database/client"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// UserDeletedHandler 收到 users 文件刪除事件時呼叫，uid 即文件 _id
type UserDeletedHandler func(ctx context.Context, uid string)

// UserWatcher 以 change stream 監聽 users 刪除事件（需 replica set）
type UserWatcher struct {
	collection *mongo.Collection
	logger     *zap.Logger
	enabled    bool
	retryDelay time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewUserWatcher(logger *zap.Logger, conf *config.Configuration, mongoClient *client.MongoClient) *UserWatcher {
	return &UserWatcher{
		collection: mongoClient.Collection(core.MongoCollectionUsers),
		logger:     logger,
		enabled:    conf.MongoDB.WatchUsers,
		retryDelay: 5 * time.Second,
	}
}

func (w *UserWatcher) Enabled() bool {
	return w.enabled
}

// Start 在背景監聽，斷線後從 resume token 續接
func (w *UserWatcher) Start(handler UserDeletedHandler) {
	if !w.enabled {
		w.logger.Info("users change stream disabled")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		var resumeToken bson.Raw
		for {
			token, err := w.watchOnce(ctx, resumeToken, handler)
			if token != nil {
				resumeToken = token
			}
			if ctx.Err() != nil {
				return
			}
			w.logger.Warn("users change stream interrupted, retrying", zap.Error(err), zap.Duration("delay", w.retryDelay))
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.retryDelay):
			}
		}
	}()
	w.logger.Info("users change stream started")
}

func (w *UserWatcher) watchOnce(ctx context.Context, resumeToken bson.Raw, handler UserDeletedHandler) (bson.Raw, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "operationType", Value: "delete"}}}},
	}
	streamOptions := options.ChangeStream()
	if resumeToken != nil {
		streamOptions.SetResumeAfter(resumeToken)
	}
	stream, err := w.collection.Watch(ctx, pipeline, streamOptions)
	if err != nil {
		return nil, err
	}
	defer stream.Close(context.Background())

	for stream.Next(ctx) {
		var event struct {
			DocumentKey struct {
				UID string `bson:"_id"`
			} `bson:"documentKey"`
		}
		if err := stream.Decode(&event); err != nil {
			w.logger.Error("decode users change event failed", zap.Error(err))
			resumeToken = stream.ResumeToken()
			continue
		}
		if event.DocumentKey.UID != "" {
			handler(ctx, event.DocumentKey.UID)
		}
		resumeToken = stream.ResumeToken()
	}
	return resumeToken, stream.Err()
}

func (w *UserWatcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
