// file: internals/features/admin/sessions/service/registry.go
package service

import (
	"crypto/subtle"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	helper "btec_backend/internals/helpers"
)

var (
	ErrInvalidCredentials = fiber.NewError(fiber.StatusUnauthorized, "بيانات الأدمن غير صحيحة")
	ErrUnauthorized       = fiber.NewError(fiber.StatusUnauthorized, "غير مصرح (سجّل دخول أدمن)")
)

type Session struct {
	Username  string
	CreatedAt time.Time
}

// Registry maps opaque bearer tokens to the admin who logged in. Nothing is
// persisted, and sessions never expire; a restart logs everybody out.
type Registry struct {
	username string
	password string

	mu       sync.RWMutex
	sessions map[string]Session
}

func NewRegistry(username, password string) *Registry {
	return &Registry{
		username: strings.TrimSpace(username),
		password: strings.TrimSpace(password),
		sessions: make(map[string]Session),
	}
}

// Login checks the single configured admin identity (both sides trimmed) and
// issues a fresh token.
func (r *Registry) Login(username, password string) (string, Session, error) {
	u := strings.TrimSpace(username)
	p := strings.TrimSpace(password)
	if !equal(u, r.username) || !equal(p, r.password) {
		return "", Session{}, ErrInvalidCredentials
	}

	token := helper.NewID(helper.PrefixToken)
	s := Session{Username: u, CreatedAt: helper.NowFunc()}

	r.mu.Lock()
	r.sessions[token] = s
	r.mu.Unlock()
	return token, s, nil
}

// Logout drops the token. Unknown tokens are fine.
func (r *Registry) Logout(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}

func (r *Registry) Authorize(token string) (Session, error) {
	if token == "" {
		return Session{}, ErrUnauthorized
	}
	r.mu.RLock()
	s, ok := r.sessions[token]
	r.mu.RUnlock()
	if !ok {
		return Session{}, ErrUnauthorized
	}
	return s, nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Close forgets every session. Called on shutdown.
func (r *Registry) Close() {
	r.mu.Lock()
	r.sessions = make(map[string]Session)
	r.mu.Unlock()
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
