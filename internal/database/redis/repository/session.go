package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mannamsalon/internal/core"
	client "mannamsalon/internal/database/client"
	"mannamsalon/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
	prefix string
}

func NewSessionRepository(trace *telemetry.Trace, client *client.RedisClient) *SessionRepository {
	return &SessionRepository{trace: trace, client: client.Client(), prefix: client.KeyPrefix()}
}

// Save 寫入 session，ttl 到期自動失效
func (repository *SessionRepository) Save(
	contextValue context.Context,
	session *core.Session,
	ttl time.Duration,
) (returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	repository.trace.ApplyTraceAttributes(span, core.TraceSessionMeta{
		SessionID: session.ID,
		Role:      string(session.Role),
		UID:       session.UID,
		Store:     session.Store,
	})

	payload, err := json.Marshal(session)
	if err != nil {
		returnedError = err
		return returnedError
	}
	returnedError = repository.client.Set(contextValue, repository.buildKey(session.ID), payload, ttl).Err()
	return returnedError
}

func (repository *SessionRepository) Get(
	contextValue context.Context,
	sessionID string,
) (session *core.Session, returnedError error) {
	contextValue, _, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	raw, err := repository.client.Get(contextValue, repository.buildKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		returnedError = ErrSessionNotFound
		return nil, returnedError
	}
	if err != nil {
		returnedError = err
		return nil, returnedError
	}
	session = &core.Session{}
	if err := json.Unmarshal(raw, session); err != nil {
		returnedError = err
		return nil, returnedError
	}
	return session, nil
}

func (repository *SessionRepository) Delete(
	contextValue context.Context,
	sessionID string,
) (returnedError error) {
	contextValue, _, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	returnedError = repository.client.Del(contextValue, repository.buildKey(sessionID)).Err()
	return returnedError
}

func (repository *SessionRepository) buildKey(sessionID string) string {
	return fmt.Sprintf("%s%s:%s:%s", repository.prefix, core.RedisKeyServerName, core.RedisKeySession, sessionID)
}
