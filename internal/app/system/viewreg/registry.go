// internal/app/system/viewreg/registry.go
package viewreg

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// Defaults used when Config leaves a field zero.
const (
	DefaultTTL      = 30 * time.Minute
	DefaultCapacity = 2000
)

// ErrKeyTooShort is returned by New when the signing key is shorter than 32 bytes.
var ErrKeyTooShort = errors.New("viewreg: signing key must be at least 32 bytes")

// Closer is implemented by view state that holds resources. The registry
// calls Close when the view expires, is evicted, or is removed.
type Closer interface {
	Close()
}

// Config configures a Registry.
type Config struct {
	Key      []byte        // HMAC key for view tokens; nil generates a random key
	TTL      time.Duration // lifetime of a view from the moment it is opened
	Capacity int           // maximum live views; the least recently used is evicted
}

type entry struct {
	page  string
	value any
}

// Registry holds the live views of open browser pages. Each view is keyed
// by a random id and referenced from the page by a signed token bound to
// the page name.
type Registry struct {
	views *expirable.LRU[string, entry]
	sc    *securecookie.SecureCookie
	log   *zap.Logger
}

// New builds a Registry.
func New(cfg Config, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	key := cfg.Key
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		logger.Warn("view token key not configured; using a random key, open pages will not survive a restart")
	}
	if len(key) < 32 {
		return nil, ErrKeyTooShort
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	r := &Registry{log: logger}
	r.sc = securecookie.New(key, nil).
		MaxAge(int(ttl / time.Second)).
		SetSerializer(securecookie.JSONEncoder{})
	r.views = expirable.NewLRU[string, entry](capacity, r.onEvict, ttl)
	return r, nil
}

func (r *Registry) onEvict(id string, e entry) {
	if c, ok := e.value.(Closer); ok {
		c.Close()
	}
	r.log.Debug("view closed", zap.String("page", e.page), zap.String("view_id", id))
}

// Open registers value as a new view of page and returns its token.
func (r *Registry) Open(page string, value any) (string, error) {
	id := uuid.NewString()
	token, err := r.sc.Encode(page, id)
	if err != nil {
		return "", fmt.Errorf("viewreg: sign view token: %w", err)
	}
	r.views.Add(id, entry{page: page, value: value})
	return token, nil
}

// Get returns the view referenced by token. It reports false when the token
// is empty, tampered, signed for another page, or the view has expired.
func (r *Registry) Get(page, token string) (any, bool) {
	id, ok := r.decode(page, token)
	if !ok {
		return nil, false
	}
	e, ok := r.views.Get(id)
	if !ok || e.page != page {
		return nil, false
	}
	return e.value, true
}

// Len reports the number of live views, including any expired views not yet
// swept.
func (r *Registry) Len() int {
	return r.views.Len()
}

// Purge closes every live view. Called at shutdown.
func (r *Registry) Purge() {
	r.views.Purge()
}

func (r *Registry) decode(page, token string) (string, bool) {
	if token == "" {
		return "", false
	}
	var id string
	if err := r.sc.Decode(page, token, &id); err != nil {
		r.log.Debug("view token rejected", zap.String("page", page), zap.Error(err))
		return "", false
	}
	return id, true
}

// Lookup returns the view referenced by token when it holds a T.
func Lookup[T any](r *Registry, page, token string) (T, bool) {
	var zero T
	v, ok := r.Get(page, token)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
