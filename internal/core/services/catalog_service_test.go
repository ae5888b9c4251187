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

func TestCatalogService(t *testing.T) {
	catalog := new(MockCatalogRepo)
	catalog.On("ListActivePresentAttendants", mock.Anything).Return([]domain.Attendant{{AttendantID: 1, Nickname: "ANA"}}, nil)
	catalog.On("ListProducts", mock.Anything).Return(nil, errors.New("decode error"))

	svc := services.NewCatalogService(catalog)

	attendants, err := svc.ListAttendants(context.Background())
	require.NoError(t, err)
	assert.Len(t, attendants, 1)

	_, err = svc.ListProducts(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}
