package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
)

type memoryCache struct {
	data    map[string][]byte
	failGet bool
}

func (m *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	if m.failGet {
		return false, errors.New("conexão recusada")
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memoryCache) Close() error { return nil }

func TestGetOrLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("carrega uma vez e depois usa o cache", func(t *testing.T) {
		c := &memoryCache{data: map[string][]byte{}}
		calls := 0
		load := func() ([]string, error) {
			calls++
			return []string{"óculos", "lentes"}, nil
		}

		first, err := GetOrLoad(ctx, c, "search-terms:1", load)
		require.NoError(t, err)
		second, err := GetOrLoad(ctx, c, "search-terms:1", load)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("erro do load não é gravado", func(t *testing.T) {
		c := &memoryCache{data: map[string][]byte{}}
		_, err := GetOrLoad(ctx, c, "k", func() (int, error) { return 0, errors.New("google ads fora do ar") })
		assert.Error(t, err)
		assert.Empty(t, c.data)
	})

	t.Run("cache com falha não impede a chamada", func(t *testing.T) {
		c := &memoryCache{data: map[string][]byte{}, failGet: true}
		v, err := GetOrLoad(ctx, c, "k", func() (int, error) { return 42, nil })
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})
}

func TestNew_SemURL(t *testing.T) {
	c, err := New(context.Background(), config.Redis{})
	require.NoError(t, err)
	assert.IsType(t, Noop{}, c)

	found, err := c.Get(context.Background(), "qualquer", new(string))
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestNew_URLInvalida(t *testing.T) {
	_, err := New(context.Background(), config.Redis{URL: "http://não-é-redis"})
	assert.Error(t, err)
}
