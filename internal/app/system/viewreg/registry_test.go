package viewreg_test

import (
	"bytes"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dalemusser/jewelcrm/internal/app/system/viewreg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeView struct {
	name   string
	closed atomic.Bool
}

func (v *fakeView) Close() { v.closed.Store(true) }

var testKey = bytes.Repeat([]byte("k"), 32)

func newRegistry(t *testing.T, cfg viewreg.Config) *viewreg.Registry {
	t.Helper()
	if cfg.Key == nil {
		cfg.Key = testKey
	}
	r, err := viewreg.New(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(r.Purge)
	return r
}

func TestOpenLookup(t *testing.T) {
	r := newRegistry(t, viewreg.Config{})
	v := &fakeView{name: "products"}

	token, err := r.Open("products", v)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, ok := viewreg.Lookup[*fakeView](r, "products", token)
	require.True(t, ok)
	assert.Same(t, v, got)
	assert.Equal(t, 1, r.Len())
}

func TestLookup_RejectsOtherPage(t *testing.T) {
	r := newRegistry(t, viewreg.Config{})
	token, err := r.Open("products", &fakeView{})
	require.NoError(t, err)

	_, ok := r.Get("orders", token)
	assert.False(t, ok)
}

func TestLookup_RejectsTamperedAndEmpty(t *testing.T) {
	r := newRegistry(t, viewreg.Config{})
	token, err := r.Open("products", &fakeView{})
	require.NoError(t, err)

	b := []byte(token)
	if b[5] == 'A' {
		b[5] = 'B'
	} else {
		b[5] = 'A'
	}
	_, ok := r.Get("products", string(b))
	assert.False(t, ok)

	_, ok = r.Get("products", "")
	assert.False(t, ok)

	_, ok = r.Get("products", "not-a-token")
	assert.False(t, ok)
}

func TestLookup_RejectsTokenFromAnotherKey(t *testing.T) {
	r1 := newRegistry(t, viewreg.Config{})
	r2 := newRegistry(t, viewreg.Config{Key: bytes.Repeat([]byte("z"), 32)})

	token, err := r2.Open("products", &fakeView{})
	require.NoError(t, err)

	_, ok := r1.Get("products", token)
	assert.False(t, ok)
}

func TestLookup_WrongType(t *testing.T) {
	r := newRegistry(t, viewreg.Config{})
	token, err := r.Open("products", "just a string")
	require.NoError(t, err)

	_, ok := viewreg.Lookup[*fakeView](r, "products", token)
	assert.False(t, ok)

	s, ok := viewreg.Lookup[string](r, "products", token)
	assert.True(t, ok)
	assert.Equal(t, "just a string", s)
}

func TestCapacity_EvictsOldestAndCloses(t *testing.T) {
	r := newRegistry(t, viewreg.Config{Capacity: 2})
	first, second, third := &fakeView{}, &fakeView{}, &fakeView{}

	t1, err := r.Open("products", first)
	require.NoError(t, err)
	_, err = r.Open("products", second)
	require.NoError(t, err)
	_, err = r.Open("products", third)
	require.NoError(t, err)

	assert.True(t, first.closed.Load())
	assert.False(t, second.closed.Load())
	assert.False(t, third.closed.Load())
	assert.Equal(t, 2, r.Len())

	_, ok := r.Get("products", t1)
	assert.False(t, ok)
}

func TestTTL_ExpiredViewNotFound(t *testing.T) {
	r := newRegistry(t, viewreg.Config{TTL: 50 * time.Millisecond})
	v := &fakeView{}
	token, err := r.Open("orders", v)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, ok := r.Get("orders", token)
		return !ok
	}, 2*time.Second, 10*time.Millisecond)

	assert.Eventually(t, v.closed.Load, 2*time.Second, 10*time.Millisecond)
}

func TestPurge_ClosesAll(t *testing.T) {
	r := newRegistry(t, viewreg.Config{})
	a, b := &fakeView{}, &fakeView{}
	_, _ = r.Open("products", a)
	_, _ = r.Open("orders", b)

	r.Purge()
	assert.True(t, a.closed.Load())
	assert.True(t, b.closed.Load())
	assert.Zero(t, r.Len())
}

func TestNew_KeyValidation(t *testing.T) {
	_, err := viewreg.New(viewreg.Config{Key: []byte("short")}, nil)
	assert.ErrorIs(t, err, viewreg.ErrKeyTooShort)

	r, err := viewreg.New(viewreg.Config{}, nil)
	require.NoError(t, err)
	token, err := r.Open("products", &fakeView{})
	require.NoError(t, err)
	_, ok := r.Get("products", token)
	assert.True(t, ok)
}
