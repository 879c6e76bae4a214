package services

import (
	"context"
	"log/slog"

	portssvc "github.com/investia/investia_backend/internal/core/ports/services"
	"github.com/investia/investia_backend/internal/dto"
	"github.com/investia/investia_backend/internal/platform/config"
	"github.com/investia/investia_backend/internal/utils"

	"github.com/investia/investia_backend/internal/apperrors"
)

// authService implements the AuthSvcFacade interface. The organization runs on
// a single shared treasurer account configured through the environment, so
// there is no user store behind this service.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username != s.cfg.TreasurerUsername || !utils.CheckPasswordHash(req.Password, s.cfg.TreasurerPasswordHash) {
		s.LogInfo(ctx, "Login rejected", slog.String("username", req.Username))
		return nil, apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(req.Username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate token", slog.String("username", req.Username))
		return nil, err
	}

	s.LogInfo(ctx, "Login succeeded", slog.String("username", req.Username))
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.cfg.JWTExpiryDuration.Seconds()),
	}, nil
}
