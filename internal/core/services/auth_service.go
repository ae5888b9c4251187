package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	portssvc "github.com/barpos/comanda_backend/internal/core/ports/services"
	"github.com/barpos/comanda_backend/internal/platform/config"
	"github.com/barpos/comanda_backend/internal/utils"
)

// authService checks operator credentials and issues access tokens.
type authService struct {
	BaseService
	cfg       *config.Config
	operators portsrepo.OperatorReader
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, operators portsrepo.OperatorReader) portssvc.AuthSvc {
	return &authService{cfg: cfg, operators: operators}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, username, password string) (*domain.Operator, string, time.Time, error) {
	username = strings.TrimSpace(username)
	operator, err := s.operators.FindOperatorByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Login for unknown operator", slog.String("username", username))
			return nil, "", time.Time{}, apperrors.ErrUnauthorized
		}
		return nil, "", time.Time{}, fmt.Errorf("%w: loading operator: %v", apperrors.ErrStorage, err)
	}

	if !operator.Active || !utils.CheckPasswordHash(password, operator.PasswordHash) {
		s.LogWarn(ctx, "Login rejected", slog.Int("operator_id", operator.OperatorID))
		return nil, "", time.Time{}, apperrors.ErrUnauthorized
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(strconv.Itoa(operator.OperatorID), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.Int("operator_id", operator.OperatorID))
		return nil, "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.LogInfo(ctx, "Operator logged in", slog.Int("operator_id", operator.OperatorID))
	return operator, token, expiresAt, nil
}
