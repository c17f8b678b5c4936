package database

import (
	client "mannamsalon/internal/database/client"
	fluentdRepo "mannamsalon/internal/database/fluentd/repository"
	mongoRepo "mannamsalon/internal/database/mongodb/repository"
	redisRepo "mannamsalon/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	client.NewFirebaseAuthClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
