package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// DefaultBasketTTL — время жизни брошенной корзины.
const DefaultBasketTTL = 7 * 24 * time.Hour

// BasketStore хранит корзину как два ключа: hash количеств (product:size → qty)
// и sorted set порядка добавления. Изменения выполняются одной MULTI-транзакцией.
type BasketStore struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

// NewBasketStore создаёт хранилище корзин в Redis.
func NewBasketStore(client *goredis.Client, prefix string, ttl time.Duration) *BasketStore {
	if ttl <= 0 {
		ttl = DefaultBasketTTL
	}
	return &BasketStore{client: client, prefix: prefix, ttl: ttl, now: time.Now}
}

func (s *BasketStore) qtyKey(sessionID string) string {
	return s.prefix + "basket:" + sessionID + ":qty"
}

func (s *BasketStore) orderKey(sessionID string) string {
	return s.prefix + "basket:" + sessionID + ":order"
}

func lineField(productID int64, size int) string {
	return strconv.FormatInt(productID, 10) + ":" + strconv.Itoa(size)
}

func parseLineField(field string) (int64, int, error) {
	rawID, rawSize, ok := strings.Cut(field, ":")
	if !ok {
		return 0, 0, fmt.Errorf("malformed basket field %q", field)
	}
	productID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse basket product id %q: %w", rawID, err)
	}
	size, err := strconv.Atoi(rawSize)
	if err != nil {
		return 0, 0, fmt.Errorf("parse basket size %q: %w", rawSize, err)
	}
	return productID, size, nil
}

func (s *BasketStore) Get(ctx context.Context, sessionID string) ([]domain.BasketLine, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, domain.ErrBasketEmpty
	}

	fields, err := s.client.ZRange(ctx, s.orderKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis basket order: %w", err)
	}
	if len(fields) == 0 {
		return []domain.BasketLine{}, nil
	}

	values, err := s.client.HMGet(ctx, s.qtyKey(sessionID), fields...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis basket quantities: %w", err)
	}

	lines := make([]domain.BasketLine, 0, len(fields))
	for i, field := range fields {
		raw, ok := values[i].(string)
		if !ok {
			// Позицию удалили между двумя чтениями.
			continue
		}
		qty, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parse basket quantity %q: %w", raw, err)
		}
		if qty <= 0 {
			continue
		}
		productID, size, err := parseLineField(field)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.BasketLine{ProductID: productID, Size: size, Quantity: qty})
	}
	return lines, nil
}

func (s *BasketStore) Add(ctx context.Context, sessionID string, line domain.BasketLine) error {
	if line.Quantity <= 0 {
		return domain.ErrInvalidAmount
	}
	field := lineField(line.ProductID, line.Size)
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HIncrBy(ctx, s.qtyKey(sessionID), field, int64(line.Quantity))
		pipe.ZAddNX(ctx, s.orderKey(sessionID), goredis.Z{Score: float64(s.now().UnixNano()), Member: field})
		pipe.Expire(ctx, s.qtyKey(sessionID), s.ttl)
		pipe.Expire(ctx, s.orderKey(sessionID), s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis basket add: %w", err)
	}
	return nil
}

func (s *BasketStore) Remove(ctx context.Context, sessionID string, productID int64, size int) error {
	field := lineField(productID, size)
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HDel(ctx, s.qtyKey(sessionID), field)
		pipe.ZRem(ctx, s.orderKey(sessionID), field)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis basket remove: %w", err)
	}
	return nil
}

// subtractScript: KEYS = {qty, order}, ARGV = пары field, qty.
var subtractScript = goredis.NewScript(`
	for i = 1, #ARGV, 2 do
		local field = ARGV[i]
		if redis.call('HEXISTS', KEYS[1], field) == 1 then
			local left = redis.call('HINCRBY', KEYS[1], field, -tonumber(ARGV[i + 1]))
			if left <= 0 then
				redis.call('HDEL', KEYS[1], field)
				redis.call('ZREM', KEYS[2], field)
			end
		end
	end
	return 0
`)

func (s *BasketStore) Subtract(ctx context.Context, sessionID string, lines []domain.BasketLine) error {
	if len(lines) == 0 {
		return nil
	}
	args := make([]any, 0, 2*len(lines))
	for _, l := range lines {
		args = append(args, lineField(l.ProductID, l.Size), l.Quantity)
	}
	keys := []string{s.qtyKey(sessionID), s.orderKey(sessionID)}
	if err := subtractScript.Run(ctx, s.client, keys, args...).Err(); err != nil {
		return fmt.Errorf("redis basket subtract: %w", err)
	}
	return nil
}

func (s *BasketStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.qtyKey(sessionID), s.orderKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis basket clear: %w", err)
	}
	return nil
}

var _ domain.BasketStore = (*BasketStore)(nil)
