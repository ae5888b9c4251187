package services_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	"github.com/barpos/comanda_backend/internal/core/services"
	"github.com/barpos/comanda_backend/internal/platform/config"
	"github.com/barpos/comanda_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryDuration: time.Hour, JWTIssuer: "comanda-test"}
	operators := new(MockOperatorRepo)
	operators.On("FindOperatorByUsername", mock.Anything, "maria").
		Return(&domain.Operator{OperatorID: 3, Username: "maria", PasswordHash: hash, Active: true}, nil)
	operators.On("FindOperatorByUsername", mock.Anything, "retired").
		Return(&domain.Operator{OperatorID: 4, Username: "retired", PasswordHash: hash, Active: false}, nil)
	operators.On("FindOperatorByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)

	svc := services.NewAuthService(cfg, operators)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		op, token, expiresAt, err := svc.Login(ctx, " maria ", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, 3, op.OperatorID)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

		claims, err := utils.ParseAndValidateJWT(token, cfg.JWTSecret)
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(3), claims.Subject)
		assert.Equal(t, "comanda-test", claims.Issuer)
	})

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "maria", password: "guess"},
		{name: "inactive operator", username: "retired", password: "s3cret"},
		{name: "unknown operator", username: "ghost", password: "s3cret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := svc.Login(ctx, tt.username, tt.password)
			assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		})
	}
}
