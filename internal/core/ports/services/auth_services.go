package services

import (
	"context"

	"github.com/investia/investia_backend/internal/dto"
)

// AuthSvcFacade authenticates the shared treasurer account and issues JWTs.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
