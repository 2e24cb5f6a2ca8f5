package services

import (
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"curiocart/internal/models"
)

// CredentialStore resolves a username to a password hash. Isolating the
// lookup behind an interface keeps the exact-match login contract testable
// and lets real credential storage replace the config table later.
type CredentialStore interface {
	Lookup(username string) (hash []byte, ok bool)
}

// ConfigCredentialStore is a CredentialStore backed by the configured user
// table. The plaintext passwords from config are hashed once at construction;
// only hashes stay in memory.
type ConfigCredentialStore struct {
	users map[string][]byte
}

// NewConfigCredentialStore hashes the configured credentials.
func NewConfigCredentialStore(users map[string]string) (*ConfigCredentialStore, error) {
	hashed := make(map[string][]byte, len(users))
	for name, pass := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash credential for %q: %w", name, err)
		}
		hashed[name] = hash
	}
	return &ConfigCredentialStore{users: hashed}, nil
}

// Lookup returns the stored hash for a username.
func (s *ConfigCredentialStore) Lookup(username string) ([]byte, bool) {
	hash, ok := s.users[username]
	return hash, ok
}

// AuthService checks login attempts against the credential store.
type AuthService struct {
	log   *slog.Logger
	creds CredentialStore
}

// NewAuthService creates a new auth service.
func NewAuthService(log *slog.Logger, creds CredentialStore) *AuthService {
	return &AuthService{
		log:   log,
		creds: creds,
	}
}

// Login succeeds only on an exact username/password match. Any other input
// yields models.ErrInvalidCredentials; unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(username, password string) error {
	hash, ok := s.creds.Lookup(username)
	if !ok {
		// Burn a comparison anyway so unknown users cost the same as wrong
		// passwords.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return models.ErrInvalidCredentials
	}

	s.log.Info("login succeeded", "username", username)
	return nil
}

var dummyHash = func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("dummy"), bcrypt.DefaultCost)
	return h
}()
