package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyring_RequiresKeys(t *testing.T) {
	_, err := NewKeyring(nil, 10, time.Minute)
	assert.Error(t, err)
}

func TestKeyring_RoundRobin(t *testing.T) {
	k, err := NewKeyring([]string{"key-aaaa", "key-bbbb"}, 0, time.Minute)
	require.NoError(t, err)

	first, err := k.Acquire()
	require.NoError(t, err)
	second, err := k.Acquire()
	require.NoError(t, err)
	third, err := k.Acquire()
	require.NoError(t, err)

	assert.Equal(t, "key-aaaa", first)
	assert.Equal(t, "key-bbbb", second)
	assert.Equal(t, "key-aaaa", third)
}

func TestKeyring_SkipsExhaustedKeys(t *testing.T) {
	k, err := NewKeyring([]string{"key-aaaa", "key-bbbb"}, 1, time.Minute)
	require.NoError(t, err)

	first, _ := k.Acquire()
	second, _ := k.Acquire()
	assert.Equal(t, "key-aaaa", first)
	assert.Equal(t, "key-bbbb", second)

	_, err = k.Acquire()
	assert.Error(t, err)
}

func TestKeyring_WindowReset(t *testing.T) {
	k, err := NewKeyring([]string{"key-aaaa"}, 1, time.Minute)
	require.NoError(t, err)

	current := time.Now()
	k.now = func() time.Time { return current }
	k.windowStart = current

	_, err = k.Acquire()
	require.NoError(t, err)
	_, err = k.Acquire()
	require.Error(t, err)

	current = current.Add(2 * time.Minute)

	_, err = k.Acquire()
	assert.NoError(t, err)
}

func TestKeyring_ReleaseDecrementsInFlight(t *testing.T) {
	k, err := NewKeyring([]string{"key-aaaa"}, 0, time.Minute)
	require.NoError(t, err)

	key, err := k.Acquire()
	require.NoError(t, err)

	stats := k.Stats()
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].InFlight)
	assert.Equal(t, 1, stats[0].Requests)

	k.Release(key)

	stats = k.Stats()
	assert.Equal(t, 0, stats[0].InFlight)
	assert.Equal(t, 1, stats[0].Requests)
}

func TestKeyring_StatsRedactsKeys(t *testing.T) {
	k, err := NewKeyring([]string{"super-secret-key-1234"}, 0, time.Minute)
	require.NoError(t, err)

	stats := k.Stats()
	assert.Equal(t, "****1234", stats[0].Key)
}
