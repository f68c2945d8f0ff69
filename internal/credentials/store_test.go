package credentials

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/printguard/printguard-api/internal/models"
	"github.com/printguard/printguard-api/internal/storage"
)

func newTestStore(t *testing.T) (*Store, storage.Store) {
	t.Helper()

	kv := storage.NewMemoryStore()
	s, err := New(context.Background(), kv)
	require.NoError(t, err)
	return s, kv
}

// =============================================================================
// Seed / login
// =============================================================================

func TestSeedManagerCanLogin(t *testing.T) {
	s, _ := newTestStore(t)

	sess, ok, err := s.Login(context.Background(), "admin@printguard.com", "123")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Carlos Silva", sess.Name)
	require.Equal(t, ManagerRole, sess.Role)
	require.Equal(t, "CS", sess.Initials)
}

func TestLoginWrongPasswordFails(t *testing.T) {
	s, _ := newTestStore(t)

	_, ok, err := s.Login(context.Background(), "admin@printguard.com", "wrong")
	require.NoError(t, err)
	require.False(t, ok)

	_, has := s.Current()
	require.False(t, has)
}

func TestLoginPersistsSession(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	_, ok, err := s.Login(ctx, "admin@printguard.com", "123")
	require.NoError(t, err)
	require.True(t, ok)

	raw, err := kv.Get(ctx, storage.KeySession)
	require.NoError(t, err)

	var persisted models.Session
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Equal(t, "admin@printguard.com", persisted.Email)

	// um novo Store sobre o mesmo armazenamento restaura a sessão
	restored, err := New(ctx, kv)
	require.NoError(t, err)

	sess, has := restored.Current()
	require.True(t, has)
	require.Equal(t, "admin@printguard.com", sess.Email)
}

// =============================================================================
// Register
// =============================================================================

func TestRegisterEstablishesSession(t *testing.T) {
	s, _ := newTestStore(t)

	sess, ok, err := s.Register(context.Background(), "Bruno Ferreira", "bruno@printguard.com", "secret1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, DefaultRole, sess.Role)
	require.Equal(t, "BR", sess.Initials)

	current, has := s.Current()
	require.True(t, has)
	require.Equal(t, "bruno@printguard.com", current.Email)

	// a nova credencial funciona no login
	_, ok, err = s.Login(context.Background(), "bruno@printguard.com", "secret1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRegisterDuplicateEmailLeavesSetUnchanged(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	before := len(s.users)

	_, ok, err := s.Register(ctx, "Outro Carlos", "admin@printguard.com", "another")
	require.NoError(t, err)
	require.False(t, ok)
	require.Len(t, s.users, before)

	// a senha original continua válida
	_, ok, err = s.Login(ctx, "admin@printguard.com", "123")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRegisterShortNameInitials(t *testing.T) {
	s, _ := newTestStore(t)

	sess, ok, err := s.Register(context.Background(), "A", "a@printguard.com", "secret1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "A", sess.Initials)
}

// =============================================================================
// Logout
// =============================================================================

func TestLogoutClearsSessionAndSlot(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	_, ok, err := s.Login(ctx, "admin@printguard.com", "123")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, s.Logout(ctx))

	_, has := s.Current()
	require.False(t, has)

	_, err = kv.Get(ctx, storage.KeySession)
	require.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestLogoutWithoutSessionIsUnconditional(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Logout(context.Background()))
}

// =============================================================================
// Load validation
// =============================================================================

func TestMalformedRecordsAreRejectedOnLoad(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()

	stored := []models.Credential{
		{Name: "Válida", Email: "ok@printguard.com", Password: "pw", Role: DefaultRole, Initials: "VA"},
		{Email: "semnome@printguard.com", Password: "pw"},
		{Name: "Sem Senha", Email: "semsenha@printguard.com"},
	}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, storage.KeyUsers, raw))

	s, err := New(ctx, kv)
	require.NoError(t, err)
	require.Len(t, s.users, 1)

	_, ok, err := s.Login(ctx, "semnome@printguard.com", "pw")
	require.NoError(t, err)
	require.False(t, ok)
}
