// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Manager   *string   `json:"manager,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StoreRef é a projeção mínima da loja usada nas listagens de vendas
type StoreRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StoreListItem é a loja como aparece no dashboard
type StoreListItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// CreateStoreRequest é a entrada do formulário/API de criação de loja.
// Campos opcionais vazios são descartados antes da escrita.
type CreateStoreRequest struct {
	Name     string `json:"name" mapstructure:"name"`
	Location string `json:"location" mapstructure:"location"`
	Manager  string `json:"manager" mapstructure:"manager"`
	Phone    string `json:"phone" mapstructure:"phone"`
	Email    string `json:"email" mapstructure:"email"`
}

// UpdateStoreRequest só altera os campos informados
type UpdateStoreRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Manager  *string `json:"manager"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
}
