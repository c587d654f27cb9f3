package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache обёртка над Redis для кешей чтения с TTL и широковещательных
// уведомлений об изменениях данных.
//
// Заменяет глобальные модульные кеши и ad hoc события обновления исходного
// продукта: TTL и канал уведомлений инжектируются явно, что делает
// инвалидацию детерминированной в тестах.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кеш с заданным временем жизни записей
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetJSON читает значение по ключу и десериализует его в dest
// Возвращает false без ошибки при промахе кеша
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache: get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache: unmarshal %s: %w", key, err)
	}
	return true, nil
}

// SetJSON сериализует значение и сохраняет его с настроенным TTL
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: marshal %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}

// Delete удаляет ключ (инвалидация при записи)
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache: delete %s: %w", key, err)
	}
	return nil
}

// Publish публикует сообщение в канал уведомлений об изменениях
// Открытые представления подписываются на канал, чтобы увидеть обновления
// раньше истечения TTL
func (c *Cache) Publish(ctx context.Context, channel, message string) error {
	if err := c.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("cache: publish to %s: %w", channel, err)
	}
	return nil
}

// Subscribe подписывается на канал уведомлений; сообщения доставляются в
// возвращаемый канал до отмены контекста
func (c *Cache) Subscribe(ctx context.Context, channel string) <-chan string {
	sub := c.client.Subscribe(ctx, channel)
	out := make(chan string)

	go func() {
		defer close(out)
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
