package mapping

import (
	"github.com/barpos/comanda_backend/internal/core/domain"
	"github.com/barpos/comanda_backend/internal/models"
)

// ToDomainOperator converts a model Operator to a domain Operator
func ToDomainOperator(m models.Operator) domain.Operator {
	return domain.Operator{
		OperatorID:   m.OperatorID,
		Name:         m.Name,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Level:        m.Level,
		Active:       m.Active,
	}
}

// ToDomainOperatorSlice converts model operators to domain operators.
func ToDomainOperatorSlice(ms []models.Operator) []domain.Operator {
	operators := make([]domain.Operator, len(ms))
	for i, m := range ms {
		operators[i] = ToDomainOperator(m)
	}
	return operators
}
