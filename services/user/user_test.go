package user_test

import (
	"context"
	"fmt"
	"testing"

	"neatspin/models"
	"neatspin/services/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUserRepo struct {
	users  map[string]*models.User // keyed by email
	nextID int
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*models.User)}
}

func (m *memoryUserRepo) Create(ctx context.Context, u models.User) (string, error) {
	m.nextID++
	u.ID = fmt.Sprintf("u%d", m.nextID)
	m.users[u.Email] = &u
	return u.ID, nil
}

func (m *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := m.users[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (m *memoryUserRepo) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	for _, u := range m.users {
		if u.ID == id {
			u.IsAdmin = isAdmin
			return nil
		}
	}
	return nil
}

func newUserService() (*user.DefaultUserService, *memoryUserRepo) {
	repo := newMemoryUserRepo()
	return &user.DefaultUserService{Repo: repo}, repo
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, repo := newUserService()

	resp, err := svc.Register("ama@example.com", "Ama Mensah", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ama@example.com", resp.Email)

	// The stored password is hashed, never plaintext.
	stored := repo.users["ama@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)

	auth, err := svc.Authenticate("ama@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, auth.ID)
	assert.NotEmpty(t, auth.Token)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register("ama@example.com", "Ama", "hunter22")
	require.NoError(t, err)

	_, err = svc.Register("ama@example.com", "Imposter", "other")
	assert.Error(t, err)
}

func TestRegisterRequiresCredentials(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register("", "Ama", "hunter22")
	assert.Error(t, err)

	_, err = svc.Register("ama@example.com", "Ama", "")
	assert.Error(t, err)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register("ama@example.com", "Ama", "hunter22")
	require.NoError(t, err)

	_, err = svc.Authenticate("ama@example.com", "wrong")
	assert.Error(t, err)

	_, err = svc.Authenticate("nobody@example.com", "hunter22")
	assert.Error(t, err)
}

func TestPromoteToAdmin(t *testing.T) {
	svc, repo := newUserService()

	_, err := svc.Register("ops@example.com", "Ops", "hunter22")
	require.NoError(t, err)

	require.NoError(t, svc.PromoteToAdmin("ops@example.com"))
	assert.True(t, repo.users["ops@example.com"].IsAdmin)

	auth, err := svc.Authenticate("ops@example.com", "hunter22")
	require.NoError(t, err)
	assert.True(t, auth.IsAdmin)
}

func TestPromoteToAdminUnknownEmail(t *testing.T) {
	svc, _ := newUserService()
	assert.Error(t, svc.PromoteToAdmin("ghost@example.com"))
}
