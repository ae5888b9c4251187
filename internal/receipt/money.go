package receipt

import (
	"github.com/barpos/comanda_backend/internal/utils"
	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string {
	return utils.FormatMoney(d)
}
