package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const keyPrefix = "ads-optimizer:"

// Cache guarda respostas de APIs externas por um tempo limitado
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New conecta ao Redis quando REDIS_URL está definida; sem URL devolve um
// cache que nunca encontra nada.
func New(ctx context.Context, cfg config.Redis) (Cache, error) {
	if cfg.URL == "" {
		log.ForContext(ctx).Info("REDIS_URL não configurada, cache desabilitado")
		return Noop{}, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "REDIS_URL inválida")
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, "falha ao conectar no Redis")
	}

	return NewRedis(client, cfg.TTL), nil
}

func NewRedis(client *redis.Client, ttl time.Duration) Cache {
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "erro ao ler chave %s", key)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, errors.Wrapf(err, "erro ao decodificar chave %s", key)
	}

	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "erro ao codificar chave %s", key)
	}

	return errors.Wrapf(c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err(), "erro ao gravar chave %s", key)
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = keyPrefix + k
	}

	return errors.Wrap(c.client.Del(ctx, prefixed...).Err(), "erro ao remover chaves")
}

func (c *redisCache) Close() error {
	return c.client.Close()
}

// Noop é usado quando o Redis não está configurado
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, any) error         { return nil }
func (Noop) Delete(context.Context, ...string) error        { return nil }
func (Noop) Close() error                                   { return nil }

// GetOrLoad devolve o valor em cache ou executa load e guarda o resultado.
// Falhas do cache só geram log; a chamada original segue normalmente.
func GetOrLoad[T any](ctx context.Context, c Cache, key string, load func() (T, error)) (T, error) {
	var cached T
	found, err := c.Get(ctx, key, &cached)
	if err != nil {
		log.ForContext(ctx).WithField("key", key).WithError(err).Warn("Cache indisponível na leitura")
	}
	if found {
		return cached, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value); err != nil {
		log.ForContext(ctx).WithField("key", key).WithError(err).Warn("Cache indisponível na escrita")
	}

	return value, nil
}
