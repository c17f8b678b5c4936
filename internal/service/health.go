package service

import (
	"context"
	"sync/atomic"
	"time"

	"mannamsalon/internal/database/client"
)

// Pinger 依賴服務的連線檢查
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthService struct {
	live   atomic.Bool
	ready  atomic.Bool
	checks map[string]Pinger
}

func NewHealthService(mongoClient *client.MongoClient, redisClient *client.RedisClient) *HealthService {
	s := &HealthService{
		checks: map[string]Pinger{
			"mongodb": mongoClient,
			"redis":   redisClient,
		},
	}
	s.live.Store(true)
	s.ready.Store(false) // 啟動完成後再打開
	return s
}

func (s *HealthService) SetReady(v bool) {
	s.ready.Store(v)
}

func (s *HealthService) IsLive() bool {
	return s.live.Load()
}

// IsReady 啟動完成且所有依賴可連線；回傳各依賴狀態
func (s *HealthService) IsReady(ctx context.Context) (bool, map[string]string) {
	status := make(map[string]string, len(s.checks))
	if !s.ready.Load() {
		return false, status
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	ok := true
	for name, p := range s.checks {
		if err := p.Ping(ctx); err != nil {
			status[name] = err.Error()
			ok = false
			continue
		}
		status[name] = "ok"
	}
	return ok, status
}
