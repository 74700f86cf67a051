package slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

const keyPrefix = "slots"

// Variant - параметры расчёта, от которых зависит список слотов дня
type Variant struct {
	StepMinutes     int
	DurationMinutes int
	BufferMinutes   int
}

// Cache хранит рассчитанные свободные слоты в Redis
// Ключ - барбер и дата (hash), поле - Variant
// Инвалидация увеличивает поколение барбера, запись со старым поколением не сохраняется
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New создает кэш слотов. Если Redis выключен, можно передавать nil вместо *Cache:
// все методы nil-кэша работают как промах
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get возвращает слоты из кэша. ok=false - в кэше ничего нет
func (c *Cache) Get(ctx context.Context, barberID int64, date time.Time, v Variant) ([]types.TimeString, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	raw, err := c.rdb.HGet(ctx, dayKey(barberID, date), v.field()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get: %v", ErrCache, err)
	}

	slots := make([]types.TimeString, 0)
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return slots, true, nil
}

// Generation возвращает поколение кэша барбера
// Его читают до выборки записей из БД и передают в Set
func (c *Cache) Generation(ctx context.Context, barberID int64) (int64, error) {
	if c == nil {
		return 0, nil
	}
	gen, err := c.rdb.Get(ctx, genKey(barberID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Generation: %v", ErrCache, err)
	}
	return gen, nil
}

// Set сохраняет слоты и продлевает TTL ключа дня
// Если после чтения gen кэш барбера инвалидировали, запись отбрасывается с ErrStale
func (c *Cache) Set(ctx context.Context, barberID int64, date time.Time, v Variant, gen int64, slots []types.TimeString) error {
	if c == nil {
		return nil
	}
	if slots == nil {
		slots = []types.TimeString{}
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("%w: Set - encode: %v", ErrCache, err)
	}

	key := dayKey(barberID, date)
	gk := genKey(barberID)
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, gk).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return ErrStale
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, v.field(), raw)
			pipe.Expire(ctx, key, c.ttl)
			return nil
		})
		return err
	}, gk)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStale), errors.Is(err, redis.TxFailedErr):
		return ErrStale
	default:
		return fmt.Errorf("%w: Set: %v", ErrCache, err)
	}
}

// InvalidateDay удаляет все закэшированные варианты слотов барбера на дату
func (c *Cache) InvalidateDay(ctx context.Context, barberID int64, date time.Time) error {
	if c == nil {
		return nil
	}
	pipe := c.rdb.TxPipeline()
	pipe.Incr(ctx, genKey(barberID))
	pipe.Del(ctx, dayKey(barberID, date))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: InvalidateDay: %v", ErrCache, err)
	}
	return nil
}

// InvalidateBarber удаляет кэш барбера на все даты (после смены расписания)
func (c *Cache) InvalidateBarber(ctx context.Context, barberID int64) error {
	if c == nil {
		return nil
	}
	if err := c.rdb.Incr(ctx, genKey(barberID)).Err(); err != nil {
		return fmt.Errorf("%w: InvalidateBarber - incr: %v", ErrCache, err)
	}

	pattern := fmt.Sprintf("%s:%d:*", keyPrefix, barberID)

	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: InvalidateBarber - scan: %v", ErrCache, err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: InvalidateBarber - del: %v", ErrCache, err)
	}

	return nil
}

func dayKey(barberID int64, date time.Time) string {
	return fmt.Sprintf("%s:%d:%s", keyPrefix, barberID, date.Format(domain.DateFormat))
}

func genKey(barberID int64) string {
	return fmt.Sprintf("%s:gen:%d", keyPrefix, barberID)
}

func (v Variant) field() string {
	return fmt.Sprintf("%d:%d:%d", v.StepMinutes, v.DurationMinutes, v.BufferMinutes)
}
