package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Empty(t, store.Path())
	assert.NoError(t, store.Load())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("index.url", "http://localhost:9200"))
	require.NoError(t, store.Set("index.url", "http://es:9200"))

	val, ok := store.Get("index.url")
	assert.True(t, ok)
	assert.Equal(t, "http://es:9200", val)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("s", "text")
	_ = store.Set("i", 7)
	_ = store.Set("i64", int64(9))
	_ = store.Set("f", 1.5)
	_ = store.Set("b", true)

	assert.Equal(t, "text", store.GetString("s"))
	assert.Equal(t, 7, store.GetInt("i"))
	assert.Equal(t, 9, store.GetInt("i64"))
	assert.Equal(t, 1, store.GetInt("f"))
	assert.Equal(t, 1.5, store.GetFloat("f"))
	assert.Equal(t, 7.0, store.GetFloat("i"))
	assert.Equal(t, 9.0, store.GetFloat("i64"))
	assert.True(t, store.GetBool("b"))
}

func TestConfigStore_WrongTypeOrMissing(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("s", "text")

	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("s"))
	assert.Equal(t, 0.0, store.GetFloat("s"))
	assert.False(t, store.GetBool("s"))
	assert.False(t, store.GetBool("missing"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("counter", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("counter")
		}()
	}
	wg.Wait()

	_, ok := store.Get("counter")
	assert.True(t, ok)
}
