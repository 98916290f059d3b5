package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

var (
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrMissingCredentials = errors.New("user id and password are required")
)

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Record is what gets persisted for a logged in user.
type Record struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// MockToken mints the opaque session token handed out after the backend
// accepted the credentials.
func MockToken(userID string, at time.Time) string {
	return fmt.Sprintf("mock_token_%s_%d", userID, at.UnixMilli())
}

// Authenticator checks credentials and returns the user's display name.
type Authenticator interface {
	Login(ctx context.Context, userID, password string) (string, error)
}

type Store interface {
	// Load returns nil, nil when nothing is persisted.
	Load(ctx context.Context) (*Record, error)
	Save(ctx context.Context, record Record) error
	Clear(ctx context.Context) error
}

// DefaultName is the display name of a user the backend returned without one.
func DefaultName(userID string) string {
	return "Usuário " + userID
}

// NewRecord builds the record for a freshly authenticated user.
func NewRecord(userID, name string, at time.Time) Record {
	if strings.TrimSpace(name) == "" {
		name = DefaultName(userID)
	}
	return Record{
		Token:     MockToken(userID, at),
		User:      User{ID: userID, Name: name},
		CreatedAt: at,
	}
}

// Session holds the current user's token and profile. Safe for concurrent use.
type Session struct {
	mutex  sync.RWMutex
	store  Store
	record *Record
	now    func() time.Time
}

func New(store Store) *Session {
	return &Session{
		store: store,
		now:   time.Now,
	}
}

// Init restores the persisted session, if any.
func (s *Session) Init(ctx context.Context) error {
	record, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if record != nil && record.Token == "" {
		record = nil
	}
	s.record = record
	return nil
}

func (s *Session) Login(ctx context.Context, authenticator Authenticator, userID, password string) (User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || password == "" {
		return User{}, ErrMissingCredentials
	}

	name, err := authenticator.Login(ctx, userID, password)
	if err != nil {
		return User{}, fmt.Errorf("login: %w", err)
	}

	record := NewRecord(userID, name, s.now())
	if err := s.store.Save(ctx, record); err != nil {
		return User{}, fmt.Errorf("save session: %w", err)
	}

	s.mutex.Lock()
	s.record = &record
	s.mutex.Unlock()

	return record.User, nil
}

// Logout forgets the session in memory and in the store.
func (s *Session) Logout(ctx context.Context) error {
	s.mutex.Lock()
	s.record = nil
	s.mutex.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Token returns the current token or "" when logged out.
func (s *Session) Token() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.record == nil {
		return ""
	}
	return s.record.Token
}

func (s *Session) User() (User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.record == nil {
		return User{}, ErrNotLoggedIn
	}
	return s.record.User, nil
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}
