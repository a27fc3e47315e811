package authenticating

import (
	"errors"
	"fmt"
)

var (
	// Login e sessão
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserDisabled       = errors.New("usuário desativado")
	ErrInvalidToken       = errors.New("token inválido")

	// Cadastro de usuários
	ErrUserAlreadyExists   = errors.New("usuário já existe")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidFormat       = errors.New("formato de dados inválido")
	ErrWeakPassword        = errors.New("senha fraca")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AuthError leva o código da API e, quando houver, o usuário envolvido.
// UserID serve ao log; nunca é devolvido ao cliente.
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Details)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError indica falha de login atribuível ao usuário
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUserDisabled)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, Details: details}
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, UserID: userID, Details: details}
}
