package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/printguard/printguard-api/internal/models"
	"github.com/printguard/printguard-api/internal/storage"
)

const (
	// DefaultRole é atribuído a quem se registra pela aplicação
	DefaultRole = "technician"
	ManagerRole = "manager"
)

// seedCredential garante um acesso de gerente conhecido na primeira
// utilização do sistema, antes de qualquer registro.
func seedCredential() models.Credential {
	return models.Credential{
		Name:     "Carlos Silva",
		Email:    "admin@printguard.com",
		Password: "123",
		Role:     ManagerRole,
		Initials: "CS",
	}
}

// Store é o dono do conjunto de credenciais e da única sessão ativa do
// processo. Login/registro/logout inválidos são resultados booleanos, nunca
// erros; erros só sinalizam falha de persistência.
type Store struct {
	kv storage.Store

	mu      sync.Mutex
	users   []models.Credential
	session *models.Session
}

func New(ctx context.Context, kv storage.Store) (*Store, error) {
	s := &Store{kv: kv}

	users, err := loadUsers(ctx, kv)
	if err != nil {
		return nil, err
	}
	s.users = users

	// sessão anterior sobrevive a reinícios; registro ilegível conta como
	// deslogado
	raw, err := kv.Get(ctx, storage.KeySession)
	if err == nil {
		var sess models.Session
		if jsonErr := json.Unmarshal(raw, &sess); jsonErr == nil && sess.Email != "" {
			s.session = &sess
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		return nil, fmt.Errorf("read session: %w", err)
	}

	return s, nil
}

func loadUsers(ctx context.Context, kv storage.Store) ([]models.Credential, error) {
	raw, err := kv.Get(ctx, storage.KeyUsers)
	if errors.Is(err, storage.ErrKeyNotFound) {
		seed := []models.Credential{seedCredential()}
		data, mErr := json.Marshal(seed)
		if mErr != nil {
			return nil, mErr
		}
		if err := kv.Set(ctx, storage.KeyUsers, data); err != nil {
			return nil, fmt.Errorf("seed users: %w", err)
		}
		return seed, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}

	var stored []models.Credential
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	// registros sem os campos obrigatórios não são confiáveis e são
	// rejeitados na carga
	users := make([]models.Credential, 0, len(stored))
	for _, u := range stored {
		if u.Name == "" || u.Email == "" || u.Password == "" {
			log.Printf("[credentials] dropping malformed record email=%q", u.Email)
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

// --------------------------------------------------
// Operations
// --------------------------------------------------

// Register cria a credencial e já estabelece a sessão do novo usuário.
// Retorna ok=false quando o e-mail já existe, sem alterar o conjunto.
func (s *Store) Register(ctx context.Context, name, email, password string) (models.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.Session{}, false, nil
		}
	}

	cred := models.Credential{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     DefaultRole,
		Initials: initialsOf(name),
	}

	next := append(cloneUsers(s.users), cred)
	if err := saveCredentials(ctx, s.kv, next); err != nil {
		return models.Session{}, false, err
	}
	s.users = next

	sess := models.Session{
		Name:     cred.Name,
		Email:    cred.Email,
		Role:     cred.Role,
		Initials: cred.Initials,
	}
	if err := s.persistSession(ctx, sess); err != nil {
		return models.Session{}, false, err
	}
	return sess, true, nil
}

// Login exige correspondência exata de e-mail e senha. A sessão resultante
// nunca carrega a senha.
func (s *Store) Login(ctx context.Context, email, password string) (models.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email != email || u.Password != password {
			continue
		}

		sess := models.Session{
			Name:     u.Name,
			Email:    u.Email,
			Role:     u.Role,
			Initials: u.Initials,
		}
		if sess.Role == "" {
			sess.Role = DefaultRole
		}
		if sess.Initials == "" {
			sess.Initials = initialsOf(u.Name)
		}

		if err := s.persistSession(ctx, sess); err != nil {
			return models.Session{}, false, err
		}
		return sess, true, nil
	}

	return models.Session{}, false, nil
}

// Logout limpa a sessão incondicionalmente.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return s.kv.Delete(ctx, storage.KeySession)
}

// Current devolve a sessão ativa, se houver.
func (s *Store) Current() (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return models.Session{}, false
	}
	return *s.session, true
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (s *Store) persistSession(ctx context.Context, sess models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, storage.KeySession, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.session = &sess
	return nil
}

func saveCredentials(ctx context.Context, kv storage.Store, users []models.Credential) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	if err := kv.Set(ctx, storage.KeyUsers, raw); err != nil {
		return fmt.Errorf("persist users: %w", err)
	}
	return nil
}

// initialsOf pega os dois primeiros caracteres do nome, em maiúsculas.
func initialsOf(name string) string {
	r := []rune(strings.TrimSpace(name))
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

func cloneUsers(users []models.Credential) []models.Credential {
	return append([]models.Credential(nil), users...)
}
