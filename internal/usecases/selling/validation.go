package selling

import (
	"fmt"
	"strings"

	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

const (
	msgSelectStore      = "Selecione uma loja"
	msgSelectMonth      = "Selecione um mês válido (AAAA-MM)"
	msgNoItems          = "Informe pelo menos um item"
	msgItemWithoutName  = "Todos os itens devem ter um nome"
	msgInvalidQuantity  = "Todas as quantidades devem ser maiores que zero"
	msgInvalidPrice     = "Todos os preços devem ser maiores que zero"
	msgInvalidSaleMonth = "Mês inválido: use AAAA-MM ou AAAA-MM-DD"
)

// ValidateBatch roda antes de qualquer escrita e devolve a primeira regra violada
func ValidateBatch(req domain.SaleBatchRequest) error {
	if strings.TrimSpace(req.StoreID) == "" {
		return domain.NewValidationError("store_id", msgSelectStore)
	}
	if _, err := utils.ParseMonth(req.Month); err != nil {
		return domain.NewValidationError("month", msgSelectMonth)
	}
	if len(req.Items) == 0 {
		return domain.NewValidationError("items", msgNoItems)
	}

	for i, item := range req.Items {
		if err := validateLineItem(i, item.ItemName, item.Quantity, item.Price); err != nil {
			return err
		}
	}

	return nil
}

func validateLineItem(index int, name string, quantity int, price float64) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewValidationError(itemField(index, "item_name"), msgItemWithoutName)
	}
	if quantity <= 0 {
		return domain.NewValidationError(itemField(index, "quantity"), msgInvalidQuantity)
	}
	if price <= 0 {
		return domain.NewValidationError(itemField(index, "price"), msgInvalidPrice)
	}
	return nil
}

func itemField(index int, field string) string {
	if index < 0 {
		return field
	}
	return fmt.Sprintf("items[%d].%s", index, field)
}
