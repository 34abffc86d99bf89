package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// FeedCache хранит отрендеренные страницы ленты в Redis на фиксированный
// TTL. Записи протухают только по времени или по явному Clear: новые посты
// внутри окна не инвалидируют кэш. Недоступный Redis никогда не роняет
// страницу — кэш просто пропускается.
type FeedCache struct {
	client *redis.Client
	logger *zap.Logger
}

func New(addr, password string, logger *zap.Logger) *FeedCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis недоступен, лента будет рендериться без кэша", zap.Error(err))
		client = nil
	} else {
		logger.Info("Успешное подключение к Redis")
	}

	return &FeedCache{client: client, logger: logger}
}

// NewWithClient используется в тестах и там, где клиент создаётся снаружи.
func NewWithClient(client *redis.Client, logger *zap.Logger) *FeedCache {
	return &FeedCache{client: client, logger: logger}
}

// Get возвращает закэшированный снимок по ключу. Второе значение false
// при промахе; недоступный Redis или nil-клиент — тот же промах.
func (c *FeedCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.client == nil {
		return nil, false
	}

	cached, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Ошибка чтения из кэша", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	return cached, true
}

// Set кладёт снимок с TTL. Запись лучших усилий: ошибка Redis логируется
// и не мешает отдать страницу.
func (c *FeedCache) Set(ctx context.Context, key string, content []byte, ttl time.Duration) {
	if c.client == nil {
		return
	}

	if err := c.client.Set(ctx, key, content, ttl).Err(); err != nil {
		c.logger.Warn("Не удалось записать в кэш", zap.String("key", key), zap.Error(err))
	}
}

// Clear удаляет все записи с данным префиксом, не дожидаясь TTL.
func (c *FeedCache) Clear(ctx context.Context, prefix string) error {
	if c.client == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}

	return iter.Err()
}
