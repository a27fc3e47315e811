package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type authMocks struct {
	users    *mocks.MockUserRepository
	sessions *mocks.MockSessionRepository
	notifier *Notifier
}

func setupService(t *testing.T) (*Service, authMocks) {
	ctrl := gomock.NewController(t)

	m := authMocks{
		users:    mocks.NewMockUserRepository(ctrl),
		sessions: mocks.NewMockSessionRepository(ctrl),
		notifier: NewNotifier(),
	}

	cfg := &config.Config{
		SecretKey: "segredo-de-teste",
		Auth:      config.Auth{SessionTTL: time.Hour},
	}

	service := NewService(m.users, m.sessions, m.notifier, cfg).(*Service)
	service.now = func() time.Time { return fixedNow }

	return service, m
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func activeUser(t *testing.T) *domain.User {
	return &domain.User{
		ID:           7,
		Name:         "Ana",
		Email:        "ana@loja.com",
		PasswordHash: hashPassword(t, "senha-forte"),
		Active:       true,
		RoleID:       domain.RoleManager,
	}
}

func login(t *testing.T, service *Service, m authMocks) (*domain.Session, string) {
	m.users.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(activeUser(t), nil)
	m.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	session, token, err := service.Login(context.Background(), "  Ana@Loja.com ", "senha-forte")
	require.NoError(t, err)
	return session, token
}

func TestLogin(t *testing.T) {
	service, m := setupService(t)
	events, unsubscribe := service.Subscribe()
	defer unsubscribe()

	session, token := login(t, service, m)

	assert.NotEmpty(t, token)
	assert.Len(t, session.ID, 24)
	assert.Equal(t, 7, session.UserID)
	assert.Equal(t, fixedNow.Add(time.Hour), session.ExpiresAt)
	assert.Empty(t, session.User.PasswordHash)

	claims, err := service.parseToken(token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, claims.ID)
	assert.Equal(t, domain.RoleManager, claims.UserRoleID)

	event := <-events
	assert.Equal(t, domain.SessionSignedIn, event.Type)
	assert.Equal(t, session.ID, event.SessionID)
}

func TestLogin_Falhas(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(t *testing.T, m authMocks)
		expected error
		code     string
	}{
		{
			name:     "Campos vazios",
			expected: ErrMissingRequiredData,
			code:     apiErrors.ErrMissingRequiredData,
			setup:    func(t *testing.T, m authMocks) {},
		},
		{
			name:     "Usuário inexistente",
			email:    "x@loja.com",
			password: "qualquer",
			expected: ErrInvalidCredentials,
			code:     apiErrors.ErrInvalidCredentials,
			setup: func(t *testing.T, m authMocks) {
				m.users.EXPECT().GetUserByEmail(gomock.Any(), "x@loja.com").Return(nil, nil)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "ana@loja.com",
			password: "errada",
			expected: ErrInvalidCredentials,
			code:     apiErrors.ErrInvalidCredentials,
			setup: func(t *testing.T, m authMocks) {
				m.users.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(activeUser(t), nil)
			},
		},
		{
			name:     "Usuário desativado",
			email:    "ana@loja.com",
			password: "senha-forte",
			expected: ErrUserDisabled,
			code:     apiErrors.ErrUserDisabled,
			setup: func(t *testing.T, m authMocks) {
				user := activeUser(t)
				user.Active = false
				m.users.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(user, nil)
			},
		},
		{
			name:     "Falha do banco",
			email:    "ana@loja.com",
			password: "senha-forte",
			code:     apiErrors.ErrDatabaseOperation,
			setup: func(t *testing.T, m authMocks) {
				m.users.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(nil, errors.New("timeout"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := setupService(t)
			tt.setup(t, m)

			session, token, err := service.Login(context.Background(), tt.email, tt.password)

			assert.Nil(t, session)
			assert.Empty(t, token)

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.code, authErr.Code)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestGetSession(t *testing.T) {
	t.Run("Sessão ativa", func(t *testing.T) {
		service, m := setupService(t)
		session, token := login(t, service, m)

		m.sessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(&domain.Session{
			ID: session.ID, UserID: 7, ExpiresAt: session.ExpiresAt,
		}, nil)
		m.users.EXPECT().GetUserByID(gomock.Any(), 7).Return(activeUser(t), nil)

		current, err := service.GetSession(context.Background(), token)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, "Ana", current.User.Name)
		assert.Empty(t, current.User.PasswordHash)
	})

	t.Run("Token inválido", func(t *testing.T) {
		service, _ := setupService(t)

		current, err := service.GetSession(context.Background(), "nao-e-um-jwt")
		assert.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("Sessão revogada", func(t *testing.T) {
		service, m := setupService(t)
		session, token := login(t, service, m)
		revokedAt := fixedNow

		m.sessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(&domain.Session{
			ID: session.ID, UserID: 7, ExpiresAt: session.ExpiresAt, RevokedAt: &revokedAt,
		}, nil)

		current, err := service.GetSession(context.Background(), token)
		assert.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("Sessão inexistente", func(t *testing.T) {
		service, m := setupService(t)
		session, token := login(t, service, m)

		m.sessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(nil, nil)

		current, err := service.GetSession(context.Background(), token)
		assert.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("Token expirado", func(t *testing.T) {
		service, m := setupService(t)
		_, token := login(t, service, m)

		service.now = func() time.Time { return fixedNow.Add(2 * time.Hour) }

		current, err := service.GetSession(context.Background(), token)
		assert.NoError(t, err)
		assert.Nil(t, current)
	})
}

func TestSignOut(t *testing.T) {
	service, m := setupService(t)
	session, token := login(t, service, m)

	events, unsubscribe := service.Subscribe()
	defer unsubscribe()

	stored := &domain.Session{ID: session.ID, UserID: 7, ExpiresAt: session.ExpiresAt}
	m.sessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(stored, nil)
	m.sessions.EXPECT().Revoke(gomock.Any(), session.ID, fixedNow).Return(nil)

	require.NoError(t, service.SignOut(context.Background(), token))

	event := <-events
	assert.Equal(t, domain.SessionSignedOut, event.Type)
	assert.Equal(t, 7, event.UserID)

	revokedAt := fixedNow
	m.sessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(&domain.Session{ID: session.ID, RevokedAt: &revokedAt}, nil)
	assert.NoError(t, service.SignOut(context.Background(), token))

	assert.NoError(t, service.SignOut(context.Background(), ""))
}

func TestCreateUser(t *testing.T) {
	t.Run("Sucesso", func(t *testing.T) {
		service, m := setupService(t)

		m.users.EXPECT().GetUserByEmail(gomock.Any(), "novo@loja.com").Return(nil, nil)
		m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-forte")))
			assert.Equal(t, domain.RoleManager, user.RoleID)
			assert.True(t, user.Active)
			user.ID = 10
			return user, nil
		})

		user, err := service.CreateUser(context.Background(), domain.CreateUserRequest{
			Name: "Novo", Email: " Novo@Loja.com ", Password: "senha-forte", RoleID: 99,
		})
		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		service, m := setupService(t)

		m.users.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(activeUser(t), nil)

		_, err := service.CreateUser(context.Background(), domain.CreateUserRequest{
			Name: "Ana", Email: "ana@loja.com", Password: "senha-forte",
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Corrida na unicidade do email", func(t *testing.T) {
		service, m := setupService(t)

		m.users.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(nil, nil)
		m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, errors.Join(repository.ErrUniqueViolation, errors.New("pq: duplicate key")))

		_, err := service.CreateUser(context.Background(), domain.CreateUserRequest{
			Name: "Ana", Email: "ana@loja.com", Password: "senha-forte",
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Dados obrigatórios e senha curta", func(t *testing.T) {
		service, _ := setupService(t)

		_, err := service.CreateUser(context.Background(), domain.CreateUserRequest{Email: "a@b.com"})
		assert.ErrorIs(t, err, ErrMissingRequiredData)

		_, err = service.CreateUser(context.Background(), domain.CreateUserRequest{Name: "A", Email: "a@b.com", Password: "curta"})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}
