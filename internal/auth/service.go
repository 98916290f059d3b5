package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/miguelofoliveir/pandafit-frontend/internal/session"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "pandafit-session||"
	tokensSetKey     = "pandafit-sessions"
)

// ErrSessionNotFound is also a session.ErrNotLoggedIn.
var ErrSessionNotFound = fmt.Errorf("session not found: %w", session.ErrNotLoggedIn)

// Service keeps one session per logged in client in redis.
type Service struct {
	redisClient   *redis.Client
	authenticator session.Authenticator
	ttl           time.Duration
	// injectable clock, for tests
	now func() time.Time
}

func NewAuthService(
	ttl time.Duration,
	redisClient *redis.Client,
	authenticator session.Authenticator,
) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		ttl:           ttl,
		redisClient:   redisClient,
		authenticator: authenticator,
		now:           time.Now,
	}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// Login asks the backend to accept the credentials, then mints and stores a session.
func (as *Service) Login(ctx context.Context, userID, password string) (session.Record, error) {
	if userID == "" || password == "" {
		return session.Record{}, session.ErrMissingCredentials
	}

	name, err := as.authenticator.Login(ctx, userID, password)
	if err != nil {
		return session.Record{}, fmt.Errorf("login: %w", err)
	}

	record := session.NewRecord(userID, name, as.now())
	recordJson, err := json.Marshal(record)
	if err != nil {
		return session.Record{}, err
	}

	if err := as.redisClient.Set(ctx, sessionKey(record.Token), string(recordJson), as.ttl).Err(); err != nil {
		return session.Record{}, fmt.Errorf("store session: %w", err)
	}

	// add token to list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, record.Token).Err(); err != nil {
		return session.Record{}, fmt.Errorf("track session: %w", err)
	}

	return record, nil
}

// Lookup returns the live session for token, or ErrSessionNotFound.
func (as *Service) Lookup(ctx context.Context, token string) (*session.Record, error) {
	val, err := as.redisClient.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var record session.Record
	if err := json.Unmarshal(val, &record); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if as.now().Sub(record.CreatedAt) > as.ttl {
		return nil, ErrSessionNotFound
	}

	return &record, nil
}

// Logout removes the session, reporting whether it existed.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	deleted, err := as.redisClient.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, err
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return deleted > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := as.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		_, err := as.Lookup(ctx, token)
		switch {
		case errors.Is(err, ErrSessionNotFound):
			toRemove = append(toRemove, token)
		case err != nil:
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
		}
	}

	for _, token := range toRemove {
		log.Debugf("=>\twill clean the session with token: %s", token)
		if _, err := as.Logout(ctx, token); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
		}
	}
}
