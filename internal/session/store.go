package session

// Store is the minimal persistent key-value store backing a session,
// so a login survives restarts. Get returns an empty string for a
// missing key; Remove of a missing key is a no-op. Implementations
// live elsewhere (SQLite in internal/storage, MemoryStore here) so
// the manager stays testable without a real persistence backend.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// Keys under which the session is persisted.
const (
	// KeyPerson holds the authenticated person's name.
	KeyPerson = "homewise_person"
	// KeyPIN holds the cached PIN. It is stored in plain form and
	// resent on every submission; the script has no other credential
	// scheme.
	KeyPIN = "homewise_pin"
	// KeyExpiresAt holds the expiry as a millisecond epoch string.
	KeyExpiresAt = "homewise_expiresAtMs"
)
