package selling

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

// ParseBatchForm lê o formulário HTML de lançamento. As linhas vêm como campos
// repetidos item_name, quantity e price; linhas totalmente vazias são ignoradas.
// Quantidade ou preço ilegível vira zero e é recusado por ValidateBatch na
// ordem dos campos.
func ParseBatchForm(form url.Values) domain.SaleBatchRequest {
	req := domain.SaleBatchRequest{
		StoreID: strings.TrimSpace(form.Get("store_id")),
		Month:   strings.TrimSpace(form.Get("month")),
		Items:   make([]domain.SaleLineItem, 0),
	}

	names := form["item_name"]
	quantities := form["quantity"]
	prices := form["price"]

	rows := max(len(names), len(quantities), len(prices))
	for i := 0; i < rows; i++ {
		name := strings.TrimSpace(valueAt(names, i))
		rawQuantity := strings.TrimSpace(valueAt(quantities, i))
		rawPrice := strings.TrimSpace(valueAt(prices, i))

		if name == "" && rawQuantity == "" && rawPrice == "" {
			continue
		}

		quantity, err := strconv.Atoi(rawQuantity)
		if err != nil {
			quantity = 0
		}
		price, err := ParsePrice(rawPrice)
		if err != nil {
			price = 0
		}

		req.Items = append(req.Items, domain.SaleLineItem{
			ItemName: name,
			Quantity: quantity,
			Price:    price,
		})
	}

	return req
}

// ParsePrice aceita ponto ou vírgula como separador decimal e arredonda para centavos
func ParsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, err
	}

	return price.Round(2).InexactFloat64(), nil
}

func valueAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
