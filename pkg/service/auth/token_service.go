package auth

import (
	"context"
	"fmt"

	"github.com/muselink-c/muselink-app/internal/pkg/auth"
	"github.com/muselink-c/muselink-app/pkg/config"
	"github.com/muselink-c/muselink-app/pkg/constant"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/domain/repository"
	"github.com/muselink-c/muselink-app/pkg/idgen"
)

type TokenService interface {
	GenerateSessionTokens(ctx context.Context, user *model.User) (accessToken, refreshToken string, expiresAt int64, err error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (accessToken string, expiresAt int64, err error)
	ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error)
}

type tokenService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

// NewTokenService 构造函数
func NewTokenService(userRepo repository.UserRepository, cfg *config.Config) TokenService {
	return &tokenService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *tokenService) secret() ([]byte, error) {
	jwtSecret := s.cfg.GetString(config.KeyJWTSecret)
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT Secret 未配置, 无法签发令牌")
	}
	return []byte(jwtSecret), nil
}

// GenerateSessionTokens 为用户签发一对会话令牌（Access + Refresh）。
func (s *tokenService) GenerateSessionTokens(ctx context.Context, user *model.User) (string, string, int64, error) {
	jwtSecret, err := s.secret()
	if err != nil {
		return "", "", 0, err
	}

	accessToken, err := auth.GenerateToken(user.ID, user.Username, jwtSecret)
	if err != nil {
		return "", "", 0, err
	}
	refreshToken, err := auth.GenerateRefreshToken(user.ID, jwtSecret)
	if err != nil {
		return "", "", 0, err
	}

	claims, err := auth.ParseToken(accessToken, jwtSecret)
	if err != nil {
		return "", "", 0, err
	}
	expiresAt := claims.ExpiresAt.Time.UnixMilli()

	return accessToken, refreshToken, expiresAt, nil
}

// RefreshAccessToken 校验刷新令牌并重新签发 Access Token。
func (s *tokenService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, int64, error) {
	jwtSecret, err := s.secret()
	if err != nil {
		return "", 0, err
	}

	claims, err := auth.ParseToken(refreshToken, jwtSecret)
	if err != nil {
		return "", 0, fmt.Errorf("%w: 无效或过期的刷新令牌", constant.ErrInvalidToken)
	}

	// claims.UserID 是公共ID，需要解码为内部数据库 ID 并验证类型
	internalUserID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil {
		return "", 0, fmt.Errorf("%w: 解码公共用户ID失败", constant.ErrInvalidToken)
	}
	if entityType != idgen.EntityTypeUser {
		return "", 0, fmt.Errorf("%w: 令牌中的用户ID类型不匹配", constant.ErrInvalidToken)
	}

	user, err := s.userRepo.FindByID(ctx, internalUserID)
	if err != nil || user == nil || user.Status != model.UserStatusActive {
		return "", 0, fmt.Errorf("%w: 用户不存在或状态异常", constant.ErrUnauthorized)
	}

	accessToken, err := auth.GenerateToken(user.ID, user.Username, jwtSecret)
	if err != nil {
		return "", 0, err
	}

	newClaims, _ := auth.ParseToken(accessToken, jwtSecret)
	expiresAt := newClaims.ExpiresAt.Time.UnixMilli()
	return accessToken, expiresAt, nil
}

// ParseAccessToken 负责解析和验证 access token
func (s *tokenService) ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error) {
	jwtSecret, err := s.secret()
	if err != nil {
		return nil, err
	}
	return auth.ParseToken(accessToken, jwtSecret)
}
