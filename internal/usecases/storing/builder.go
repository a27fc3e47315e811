package storing

import (
	"strings"

	"github.com/vfg2006/retail-sales-api/internal/domain"
)

// StoreBuilder monta a loja com os campos obrigatórios e só acrescenta os
// opcionais que vierem preenchidos
type StoreBuilder struct {
	store domain.Store
}

func NewStoreBuilder(name, location string) *StoreBuilder {
	return &StoreBuilder{
		store: domain.Store{
			Name:     strings.TrimSpace(name),
			Location: strings.TrimSpace(location),
		},
	}
}

func (b *StoreBuilder) WithManager(manager string) *StoreBuilder {
	b.store.Manager = optional(manager)
	return b
}

func (b *StoreBuilder) WithPhone(phone string) *StoreBuilder {
	b.store.Phone = optional(phone)
	return b
}

func (b *StoreBuilder) WithEmail(email string) *StoreBuilder {
	b.store.Email = optional(strings.ToLower(email))
	return b
}

func (b *StoreBuilder) Build() *domain.Store {
	store := b.store
	return &store
}

// FromRequest aplica a requisição inteira ao builder
func FromRequest(req domain.CreateStoreRequest) *StoreBuilder {
	return NewStoreBuilder(req.Name, req.Location).
		WithManager(req.Manager).
		WithPhone(req.Phone).
		WithEmail(req.Email)
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
