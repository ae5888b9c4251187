package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	"github.com/barpos/comanda_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListOperators_ClearsPasswordHashes(t *testing.T) {
	repo := new(MockOperatorRepo)
	repo.On("ListOperators", mock.Anything).Return([]domain.Operator{
		{OperatorID: 1, Name: "Caixa", Username: "caixa", PasswordHash: "$2a$10$abc", Level: 1, Active: true},
		{OperatorID: 2, Name: "Gerente", Username: "gerente", PasswordHash: "$2a$10$def", Level: 9, Active: true},
	}, nil)

	operators, err := services.NewOperatorService(repo).ListOperators(context.Background())
	require.NoError(t, err)
	require.Len(t, operators, 2)
	for _, op := range operators {
		assert.Empty(t, op.PasswordHash, "operator %d", op.OperatorID)
	}
	assert.Equal(t, "gerente", operators[1].Username)
}

func TestListOperators_StorageError(t *testing.T) {
	repo := new(MockOperatorRepo)
	repo.On("ListOperators", mock.Anything).Return(nil, errors.New("unreadable"))

	_, err := services.NewOperatorService(repo).ListOperators(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}
