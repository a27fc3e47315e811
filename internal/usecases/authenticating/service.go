package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-api/pkg/log"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.Session, string, error)
	GetSession(ctx context.Context, token string) (*domain.Session, error)
	SignOut(ctx context.Context, token string) error
	Subscribe() (<-chan domain.SessionEvent, func())
	CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error)
}

type Service struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	notifier    *Notifier
	secretKey   string
	sessionTTL  time.Duration
	now         func() time.Time
}

func NewService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, notifier *Notifier, cfg *config.Config) Authenticator {
	return &Service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		notifier:    notifier,
		secretKey:   cfg.SecretKey,
		sessionTTL:  cfg.Auth.SessionTTL,
		now:         time.Now,
	}
}

func (s *Service) CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Name) == "" || req.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios")
	}
	if len(req.Password) < minPasswordLength {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "A senha deve conter pelo menos 8 caracteres")
	}

	email := handleEmail(req.Email)

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar hash da senha")
	}

	roleID := req.RoleID
	if roleID != domain.RoleAdmin {
		roleID = domain.RoleManager
	}

	user, err := s.userRepo.CreateUser(ctx, &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Active:       true,
		RoleID:       roleID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
		}
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	user.PasswordHash = ""
	return user, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// Login cria uma sessão persistida e devolve o JWT que a identifica
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Session, string, error) {
	if email == "" || password == "" {
		return nil, "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, handleEmail(email))
	if err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	// Usuário inexistente e senha errada respondem igual
	if user == nil {
		return nil, "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Email ou senha incorretos")
	}

	if !user.Active {
		return nil, "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	sessionID, err := utils.GenerateID()
	if err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador da sessão")
	}

	now := s.now().UTC()
	session := &domain.Session{
		ID:        sessionID,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar sessão")
	}

	token, err := generateJWT(user, session, s.secretKey)
	if err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	user.PasswordHash = ""
	session.User = user

	s.notifier.Publish(domain.SessionEvent{
		Type:       domain.SessionSignedIn,
		SessionID:  session.ID,
		UserID:     user.ID,
		OccurredAt: now,
	})

	return session, token, nil
}

// GetSession devolve nil, nil quando não há sessão ativa para o token
func (s *Service) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		log.ForContext(ctx).WithError(err).Debug("Token de sessão rejeitado")
		return nil, nil
	}

	session, err := s.sessionRepo.GetByID(ctx, claims.ID)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar sessão")
	}
	if !session.IsActive(s.now()) {
		return nil, nil
	}

	user, err := s.userRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuário da sessão")
	}
	if user == nil || !user.Active {
		return nil, nil
	}

	user.PasswordHash = ""
	session.User = user

	return session, nil
}

// SignOut revoga a sessão do token. Token inválido ou sessão já encerrada não
// são erro.
func (s *Service) SignOut(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil
	}

	session, err := s.sessionRepo.GetByID(ctx, claims.ID)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar sessão")
	}
	if session == nil || session.RevokedAt != nil {
		return nil
	}

	now := s.now().UTC()
	if err := s.sessionRepo.Revoke(ctx, session.ID, now); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao encerrar sessão")
	}

	s.notifier.Publish(domain.SessionEvent{
		Type:       domain.SessionSignedOut,
		SessionID:  session.ID,
		UserID:     session.UserID,
		OccurredAt: now,
	})

	return nil
}

func (s *Service) Subscribe() (<-chan domain.SessionEvent, func()) {
	return s.notifier.Subscribe()
}

func generateJWT(user *domain.User, session *domain.Session, secretKey string) (string, error) {
	claims := domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) parseToken(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
