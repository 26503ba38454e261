package session

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucianookdp/HomeWise/internal/common"
	"github.com/lucianookdp/HomeWise/internal/gateway"
)

// fakeCaller records every payload and answers with a fixed result.
type fakeCaller struct {
	result   gateway.Result
	payloads []map[string]string
}

func (f *fakeCaller) Call(_ context.Context, payload any) gateway.Result {
	p, _ := payload.(map[string]string)
	f.payloads = append(f.payloads, p)
	return f.result
}

func newTestManager(result gateway.Result) (*Manager, *fakeCaller, *clockwork.FakeClock) {
	api := &fakeCaller{result: result}
	clock := clockwork.NewFakeClock()
	return NewManager(NewMemoryStore(), api, clock), api, clock
}

func TestLoginValidation(t *testing.T) {
	t.Run("empty person is rejected locally", func(t *testing.T) {
		mgr, api, _ := newTestManager(gateway.Result{Kind: gateway.KindOK, Success: true})

		_, err := mgr.Login(context.Background(), "", "1234")
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrValidation)
		assert.Empty(t, api.payloads, "no network call should be made")
	})

	t.Run("unknown person is rejected locally", func(t *testing.T) {
		mgr, api, _ := newTestManager(gateway.Result{Kind: gateway.KindOK, Success: true})

		_, err := mgr.Login(context.Background(), "Fulano", "1234")
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrValidation)
		assert.Empty(t, api.payloads)
	})

	t.Run("short pin is rejected locally", func(t *testing.T) {
		mgr, api, _ := newTestManager(gateway.Result{Kind: gateway.KindOK, Success: true})

		_, err := mgr.Login(context.Background(), "Luciano", "123")
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrValidation)
		assert.Equal(t, "Acesso inválido. Tente novamente.", common.UserMessage(err))
		assert.Empty(t, api.payloads)
	})

	t.Run("pin is normalized before the length check", func(t *testing.T) {
		mgr, api, _ := newTestManager(gateway.Result{Kind: gateway.KindOK, Success: true})

		// Nine characters but only three digits.
		_, err := mgr.Login(context.Background(), "Luciano", "1-2-3-a-b")
		require.Error(t, err)
		assert.Empty(t, api.payloads)
	})
}

func TestLoginSuccess(t *testing.T) {
	mgr, api, clock := newTestManager(gateway.Result{Kind: gateway.KindOK, Success: true})

	sess, err := mgr.Login(context.Background(), "Luciano", "12-34")
	require.NoError(t, err)

	require.Len(t, api.payloads, 1)
	assert.Equal(t, "login", api.payloads[0]["action"])
	assert.Equal(t, "Luciano", api.payloads[0]["person"])
	assert.Equal(t, "1234", api.payloads[0]["pin"], "pin travels normalized")

	assert.Equal(t, "Luciano", sess.Person)
	assert.Equal(t, clock.Now().Add(TTL), sess.ExpiresAt)

	assert.True(t, mgr.IsActive())
	assert.Equal(t, 480, mgr.RemainingMinutes())
}

func TestLoginPrefersServerPersonName(t *testing.T) {
	mgr, _, _ := newTestManager(gateway.Result{Kind: gateway.KindOK, Success: true, Person: "Adriana"})

	sess, err := mgr.Login(context.Background(), "Luciano", "1234")
	require.NoError(t, err)

	assert.Equal(t, "Adriana", sess.Person)
	assert.Equal(t, "Adriana", mgr.Current().Person)
}

func TestLoginRemoteFailure(t *testing.T) {
	mgr, _, _ := newTestManager(gateway.Result{Kind: gateway.KindRemote, Message: "PIN incorreto"})

	_, err := mgr.Login(context.Background(), "Luciano", "1234")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrRemote)
	assert.Equal(t, "Acesso inválido. Tente novamente.", common.UserMessage(err))
	assert.False(t, mgr.IsActive())
}

func TestSessionPersistsAcrossManagers(t *testing.T) {
	store := NewMemoryStore()
	api := &fakeCaller{result: gateway.Result{Kind: gateway.KindOK, Success: true}}
	clock := clockwork.NewFakeClock()

	mgr := NewManager(store, api, clock)
	_, err := mgr.Login(context.Background(), "Mariana", "5678")
	require.NoError(t, err)

	// A fresh manager over the same store sees the same session.
	fresh := NewManager(store, api, clock)
	assert.True(t, fresh.IsActive())
	assert.Equal(t, "Mariana", fresh.Current().Person)
}

func TestLazyExpiry(t *testing.T) {
	mgr, _, clock := newTestManager(gateway.Result{Kind: gateway.KindOK, Success: true})

	assert.False(t, mgr.IsActive(), "inactive before any login")

	_, err := mgr.Login(context.Background(), "Luciano", "1234")
	require.NoError(t, err)
	assert.True(t, mgr.IsActive())

	clock.Advance(TTL - time.Minute)
	assert.True(t, mgr.IsActive())
	assert.Equal(t, 1, mgr.RemainingMinutes())

	clock.Advance(time.Minute)
	assert.False(t, mgr.IsActive(), "expiry is strictly greater-than")
	assert.Equal(t, 0, mgr.RemainingMinutes())
}

func TestExpiredByOneMillisecond(t *testing.T) {
	store := NewMemoryStore()
	clock := clockwork.NewFakeClock()
	mgr := NewManager(store, &fakeCaller{}, clock)

	expiredAt := clock.Now().Add(-time.Millisecond)
	require.NoError(t, store.Set(KeyPerson, "Luciano"))
	require.NoError(t, store.Set(KeyPIN, "1234"))
	require.NoError(t, store.Set(KeyExpiresAt, unixMilliString(expiredAt)))

	assert.False(t, mgr.IsActive())
}

func TestLogoutIsIdempotent(t *testing.T) {
	mgr, _, _ := newTestManager(gateway.Result{Kind: gateway.KindOK, Success: true})

	_, err := mgr.Login(context.Background(), "Luciano", "1234")
	require.NoError(t, err)

	require.NoError(t, mgr.Logout())
	assert.False(t, mgr.IsActive())
	assert.Empty(t, mgr.Current().Person)
	assert.Empty(t, mgr.Current().PIN)

	// Logging out again is fine.
	require.NoError(t, mgr.Logout())
}

func TestCurrentToleratesGarbageExpiry(t *testing.T) {
	store := NewMemoryStore()
	mgr := NewManager(store, &fakeCaller{}, clockwork.NewFakeClock())

	require.NoError(t, store.Set(KeyPerson, "Luciano"))
	require.NoError(t, store.Set(KeyPIN, "1234"))
	require.NoError(t, store.Set(KeyExpiresAt, "not-a-number"))

	assert.False(t, mgr.IsActive())
	assert.Equal(t, 0, mgr.RemainingMinutes())
}

func unixMilliString(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
