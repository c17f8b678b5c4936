package service

import (
	"context"
	"errors"
	"time"

	"mannamsalon/config"
	"mannamsalon/internal/core"
	redisRepository "mannamsalon/internal/database/redis/repository"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/telemetry"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const defaultSessionTTL = 24 * time.Hour

// AuthService 管理者密碼 / 員工姓名登入，session 存 Redis，token 只帶 session id
type AuthService struct {
	logger   *zap.Logger
	trace    *telemetry.Trace
	conf     *config.Configuration
	users    UserStore
	sessions SessionStore
	now      func() time.Time
}

func NewAuthService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	conf *config.Configuration,
	users UserStore,
	sessions SessionStore,
) *AuthService {
	return &AuthService{
		logger:   logger,
		trace:    trace,
		conf:     conf,
		users:    users,
		sessions: sessions,
		now:      time.Now,
	}
}

func (s *AuthService) ttl() time.Duration {
	if s.conf.Session.TTLHours > 0 {
		return time.Duration(s.conf.Session.TTLHours) * time.Hour
	}
	return defaultSessionTTL
}

func (s *AuthService) VerifyManager(ctx context.Context, req *dto.VerifyManagerDto) (*dto.LoginResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	hash := s.conf.Manager.PasswordHash
	if hash == "" {
		err := cErr.ConfigurationError("MANAGER__PASSWORD_HASH is not set")
		end(err)
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		end(nil)
		return nil, cErr.Unauthorized("비밀번호가 일치하지 않습니다")
	}
	resp, err := s.issue(ctx, &core.Session{Role: core.RoleManager, Name: "관리자"})
	end(err)
	return resp, err
}

func (s *AuthService) VerifyEmployee(ctx context.Context, req *dto.VerifyEmployeeDto) (*dto.LoginResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	user, err := s.users.FindActiveByName(ctx, req.Name)
	if err != nil {
		end(nil)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.Unauthorized("등록되지 않은 직원입니다")
		}
		return nil, cErr.DatabaseError(err.Error())
	}
	resp, err := s.issue(ctx, &core.Session{
		Role:     core.RoleEmployee,
		UID:      user.UID,
		Name:     user.Name,
		Store:    user.Store,
		Position: user.Position,
	})
	end(err)
	return resp, err
}

func (s *AuthService) issue(ctx context.Context, session *core.Session) (*dto.LoginResponseDto, error) {
	secret := s.conf.Session.JWTSecret
	if secret == "" {
		return nil, cErr.ConfigurationError("SESSION__JWT_SECRET is not set")
	}
	now := s.now().UTC()
	ttl := s.ttl()
	session.ID = uuid.NewString()
	session.LoginTime = now

	if err := s.sessions.Save(ctx, session, ttl); err != nil {
		return nil, cErr.ServiceUnavailable("session store: " + err.Error())
	}
	claims := core.Claims{
		SessionID: session.ID,
		Role:      session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.conf.App.Name,
			Subject:   session.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return nil, cErr.InternalServer("sign token: " + err.Error())
	}
	s.logger.Info("session created",
		zap.String("sessionId", session.ID),
		zap.String("role", string(session.Role)),
		zap.String("uid", session.UID),
	)
	return &dto.LoginResponseDto{Token: token, ExpiresAt: now.Add(ttl), Session: session}, nil
}

// Authenticate 驗證 token 並從 Redis 取回 session
func (s *AuthService) Authenticate(ctx context.Context, token string) (*core.Session, error) {
	if token == "" {
		return nil, cErr.InvalidSession("missing token")
	}
	claims := &core.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.conf.Session.JWTSecret), nil
	})
	if err != nil || !parsed.Valid || claims.SessionID == "" {
		return nil, cErr.InvalidSession("invalid token")
	}
	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, redisRepository.ErrSessionNotFound) {
			return nil, cErr.InvalidSession("session expired")
		}
		return nil, cErr.ServiceUnavailable("session store: " + err.Error())
	}
	return session, nil
}

func (s *AuthService) Logout(ctx context.Context, session *core.Session) error {
	if err := requireSession(session); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		return cErr.ServiceUnavailable("session store: " + err.Error())
	}
	return nil
}
