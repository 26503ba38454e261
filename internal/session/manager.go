// Package session tracks who is logged in and for how long.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/lucianookdp/HomeWise/internal/common"
	"github.com/lucianookdp/HomeWise/internal/gateway"
	"github.com/lucianookdp/HomeWise/internal/model"
)

// TTL is how long a login stays valid.
const TTL = 8 * time.Hour

// Caller abstracts the API gateway so tests can stub the exchange.
type Caller interface {
	Call(ctx context.Context, payload any) gateway.Result
}

// Manager owns the login/logout lifecycle. It holds no session state
// of its own: every read goes through the store, and expiry is
// re-evaluated on each read instead of by a background timer.
type Manager struct {
	store Store
	api   Caller
	clock clockwork.Clock
}

// NewManager creates a session manager. A nil clock falls back to the
// real clock.
func NewManager(store Store, api Caller, clock clockwork.Clock) *Manager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Manager{store: store, api: api, clock: clock}
}

// Login validates the person and PIN locally, then asks the endpoint
// to confirm them. On success the session is persisted with an eight
// hour expiry. The server's canonical spelling of the person name
// wins over the submitted one.
func (m *Manager) Login(ctx context.Context, person, pinRaw string) (*model.Session, error) {
	if person == "" {
		return nil, common.NewUserError("Selecione a pessoa.", common.ErrValidation)
	}
	if !model.IsPerson(person) {
		return nil, common.NewUserError("Pessoa não cadastrada na planilha.", common.ErrValidation)
	}

	pin := NormalizePin(pinRaw)
	if pin == "" {
		return nil, common.NewUserError("Informe o acesso.", common.ErrValidation)
	}
	if len(pin) < MinPinDigits {
		return nil, common.NewUserError("Acesso inválido. Tente novamente.", common.ErrValidation)
	}

	result := m.api.Call(ctx, map[string]string{
		"action": "login",
		"person": person,
		"pin":    pin,
	})
	if err := result.Err(); err != nil {
		return nil, err
	}

	if result.Person != "" {
		person = result.Person
	}
	sess := &model.Session{
		Person:    person,
		PIN:       pin,
		ExpiresAt: m.clock.Now().Add(TTL),
	}
	if err := m.save(sess); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	slog.Info("login succeeded", "person", sess.Person, "expires_at", sess.ExpiresAt.Format(time.RFC3339))
	return sess, nil
}

// Logout clears the persisted session unconditionally. Logging out
// without a session is a no-op.
func (m *Manager) Logout() error {
	for _, key := range []string{KeyPerson, KeyPIN, KeyExpiresAt} {
		if err := m.store.Remove(key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}

// Current loads the persisted session. Missing or unparsable entries
// yield a session that is never active.
func (m *Manager) Current() model.Session {
	person, _ := m.store.Get(KeyPerson)
	pin, _ := m.store.Get(KeyPIN)
	rawExpiry, _ := m.store.Get(KeyExpiresAt)

	sess := model.Session{Person: person, PIN: pin}
	if ms, err := strconv.ParseInt(rawExpiry, 10, 64); err == nil && ms > 0 {
		sess.ExpiresAt = time.UnixMilli(ms)
	}
	return sess
}

// IsActive reports whether a usable session exists right now.
func (m *Manager) IsActive() bool {
	return m.Current().ActiveAt(m.clock.Now())
}

// RemainingMinutes returns the whole minutes of session left, clamped
// to zero.
func (m *Manager) RemainingMinutes() int {
	return m.Current().RemainingMinutes(m.clock.Now())
}

func (m *Manager) save(sess *model.Session) error {
	if err := m.store.Set(KeyPerson, sess.Person); err != nil {
		return err
	}
	if err := m.store.Set(KeyPIN, sess.PIN); err != nil {
		return err
	}
	return m.store.Set(KeyExpiresAt, strconv.FormatInt(sess.ExpiresAt.UnixMilli(), 10))
}
