package storing

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/retail-sales-api/internal/domain"
)

const minFieldLength = 2

const (
	msgNameTooShort     = "O nome da loja deve ter pelo menos 2 caracteres"
	msgLocationTooShort = "A localização deve ter pelo menos 2 caracteres"
	msgInvalidEmail     = "Informe um email válido"
)

// ValidateStore devolve a primeira regra violada, na ordem dos campos do formulário
func ValidateStore(req domain.CreateStoreRequest) error {
	if !hasMinLength(req.Name) {
		return domain.NewValidationError("name", msgNameTooShort)
	}
	if !hasMinLength(req.Location) {
		return domain.NewValidationError("location", msgLocationTooShort)
	}
	if email := strings.TrimSpace(req.Email); email != "" && !IsValidEmail(email) {
		return domain.NewValidationError("email", msgInvalidEmail)
	}
	return nil
}

// ValidateStoreUpdate aplica as mesmas regras apenas aos campos informados
func ValidateStoreUpdate(req domain.UpdateStoreRequest) error {
	if req.Name != nil && !hasMinLength(*req.Name) {
		return domain.NewValidationError("name", msgNameTooShort)
	}
	if req.Location != nil && !hasMinLength(*req.Location) {
		return domain.NewValidationError("location", msgLocationTooShort)
	}
	if req.Email != nil {
		if email := strings.TrimSpace(*req.Email); email != "" && !IsValidEmail(email) {
			return domain.NewValidationError("email", msgInvalidEmail)
		}
	}
	return nil
}

// IsValidEmail aceita apenas o endereço puro, sem nome de exibição
func IsValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}

func hasMinLength(value string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(value)) >= minFieldLength
}
