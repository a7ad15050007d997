package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/service/checkout"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"

	CacheDriverNone   = "none"
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"

	BasketDriverMemory = "memory"
	BasketDriverRedis  = "redis"

	CatalogDriverMemory = "memory"
	CatalogDriverSQLite = "sqlite"
	CatalogDriverHTTP   = "http"
)

// Переменные окружения сервиса.
const (
	EnvHTTPAddr    = "SHOP_HTTP_ADDR"
	EnvGRPCAddr    = "SHOP_GRPC_ADDR"
	EnvMetricsAddr = "SHOP_METRICS_ADDR"
	EnvLogLevel    = "SHOP_LOG_LEVEL"
	EnvServiceName = "SHOP_SERVICE_NAME"

	EnvStorageDriver       = "SHOP_STORAGE_DRIVER"
	EnvPostgresDSN         = "SHOP_POSTGRES_DSN"
	EnvPostgresAutoMigrate = "SHOP_POSTGRES_AUTO_MIGRATE"
	EnvPostgresMaxConns    = "SHOP_POSTGRES_MAX_CONNS"

	EnvCacheDriver   = "SHOP_CACHE_DRIVER"
	EnvCacheTTL      = "SHOP_CACHE_TTL"
	EnvBasketDriver  = "SHOP_BASKET_DRIVER"
	EnvBasketTTL     = "SHOP_BASKET_TTL"
	EnvRedisAddr     = "SHOP_REDIS_ADDR"
	EnvRedisPassword = "SHOP_REDIS_PASSWORD"
	EnvRedisDB       = "SHOP_REDIS_DB"

	EnvCatalogDriver     = "SHOP_CATALOG_DRIVER"
	EnvCatalogSQLitePath = "SHOP_CATALOG_SQLITE_PATH"
	EnvCatalogURL        = "SHOP_CATALOG_URL"
	EnvCatalogTimeout    = "SHOP_CATALOG_TIMEOUT"

	EnvLowStockThreshold = "SHOP_LOW_STOCK_THRESHOLD"
	EnvInStockThreshold  = "SHOP_IN_STOCK_THRESHOLD"

	EnvPromoPolicy         = "SHOP_PROMO_POLICY"
	EnvCheckoutTimeout     = "SHOP_CHECKOUT_TIMEOUT"
	EnvCompensationTimeout = "SHOP_COMPENSATION_TIMEOUT"
	EnvIdempotencyTTL      = "SHOP_IDEMPOTENCY_TTL"

	EnvReconcileInterval  = "SHOP_RECONCILE_INTERVAL"
	EnvReconcileGrace     = "SHOP_RECONCILE_GRACE"
	EnvReconcileBatchSize = "SHOP_RECONCILE_BATCH_SIZE"

	EnvOutboxPollInterval = "SHOP_OUTBOX_POLL_INTERVAL"
	EnvOutboxBatchSize    = "SHOP_OUTBOX_BATCH_SIZE"
	EnvOutboxMaxAttempts  = "SHOP_OUTBOX_MAX_ATTEMPTS"
	EnvOutboxRetryDelay   = "SHOP_OUTBOX_RETRY_DELAY"

	EnvIdempotencyCleanupInterval  = "SHOP_IDEMPOTENCY_CLEANUP_INTERVAL"
	EnvIdempotencyCleanupBatchSize = "SHOP_IDEMPOTENCY_CLEANUP_BATCH_SIZE"

	EnvKafkaBrokers       = "SHOP_KAFKA_BROKERS"
	EnvKafkaClientID      = "SHOP_KAFKA_CLIENT_ID"
	EnvKafkaOrderTopic    = "SHOP_KAFKA_ORDER_TOPIC"
	EnvKafkaPaymentTopic  = "SHOP_KAFKA_PAYMENT_TOPIC"
	EnvKafkaDLQTopic      = "SHOP_KAFKA_DLQ_TOPIC"
	EnvKafkaConsumerGroup = "SHOP_KAFKA_CONSUMER_GROUP"

	EnvOTLPEndpoint     = "SHOP_OTLP_ENDPOINT"
	EnvOTLPInsecure     = "SHOP_OTLP_INSECURE"
	EnvTraceSampleRatio = "SHOP_TRACE_SAMPLE_RATIO"
)

// EnvLookup совместим с os.LookupEnv.
type EnvLookup func(key string) (string, bool)

// Config описывает настройки запуска приложения.
type Config struct {
	HTTPAddr    string
	GRPCAddr    string
	MetricsAddr string
	LogLevel    string
	ServiceName string

	StorageDriver       string
	PostgresDSN         string
	PostgresAutoMigrate bool
	PostgresMaxConns    int

	CacheDriver   string
	CacheTTL      time.Duration
	BasketDriver  string
	BasketTTL     time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CatalogDriver     string
	CatalogSQLitePath string
	CatalogURL        string
	CatalogTimeout    time.Duration

	LowStockThreshold int
	InStockThreshold  int

	PromoPolicy         checkout.PromoPolicy
	CheckoutTimeout     time.Duration
	CompensationTimeout time.Duration
	IdempotencyTTL      time.Duration

	ReconcileInterval  time.Duration
	ReconcileGrace     time.Duration
	ReconcileBatchSize int

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxAttempts  int
	OutboxRetryDelay   time.Duration

	IdempotencyCleanupInterval  time.Duration
	IdempotencyCleanupBatchSize int

	// KafkaBrokers — список через запятую; пустое значение отключает Kafka.
	KafkaBrokers       string
	KafkaClientID      string
	KafkaOrderTopic    string
	KafkaPaymentTopic  string
	KafkaDLQTopic      string
	KafkaConsumerGroup string

	OTLPEndpoint     string
	OTLPInsecure     bool
	TraceSampleRatio float64
}

// DefaultConfig возвращает конфигурацию для локального запуска без внешних зависимостей.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:    ":8080",
		GRPCAddr:    ":50051",
		MetricsAddr: ":9090",
		LogLevel:    "info",
		ServiceName: "storefront",

		StorageDriver:       StorageDriverMemory,
		PostgresAutoMigrate: true,
		PostgresMaxConns:    25,

		CacheDriver:  CacheDriverMemory,
		CacheTTL:     30 * time.Second,
		BasketDriver: BasketDriverMemory,
		BasketTTL:    7 * 24 * time.Hour,
		RedisAddr:    "localhost:6379",

		CatalogDriver:     CatalogDriverMemory,
		CatalogSQLitePath: "catalog.db",
		CatalogTimeout:    2 * time.Second,

		LowStockThreshold: 1,
		InStockThreshold:  5,

		PromoPolicy:         checkout.PromoPolicyAbort,
		CheckoutTimeout:     10 * time.Second,
		CompensationTimeout: 5 * time.Second,
		IdempotencyTTL:      24 * time.Hour,

		ReconcileInterval:  time.Minute,
		ReconcileGrace:     5 * time.Minute,
		ReconcileBatchSize: 100,

		OutboxPollInterval: time.Second,
		OutboxBatchSize:    100,
		OutboxMaxAttempts:  3,
		OutboxRetryDelay:   100 * time.Millisecond,

		IdempotencyCleanupInterval:  10 * time.Minute,
		IdempotencyCleanupBatchSize: 500,

		KafkaClientID:      "storefront",
		KafkaOrderTopic:    "storefront.order.events",
		KafkaPaymentTopic:  "storefront.payment.events",
		KafkaDLQTopic:      "storefront.dlq",
		KafkaConsumerGroup: "storefront-payments",

		OTLPInsecure:     true,
		TraceSampleRatio: 1,
	}
}

// LoadConfig накладывает переменные окружения на DefaultConfig.
// Некорректное значение не прерывает запуск: поле остаётся по умолчанию, а в warnings попадает описание.
func LoadConfig(lookup EnvLookup) (Config, []string) {
	cfg := DefaultConfig()
	if lookup == nil {
		return cfg, nil
	}
	l := loader{lookup: lookup}

	l.str(EnvHTTPAddr, &cfg.HTTPAddr)
	l.str(EnvGRPCAddr, &cfg.GRPCAddr)
	l.str(EnvMetricsAddr, &cfg.MetricsAddr)
	l.lower(EnvLogLevel, &cfg.LogLevel)
	l.str(EnvServiceName, &cfg.ServiceName)

	l.lower(EnvStorageDriver, &cfg.StorageDriver)
	l.str(EnvPostgresDSN, &cfg.PostgresDSN)
	l.boolean(EnvPostgresAutoMigrate, &cfg.PostgresAutoMigrate)
	l.integer(EnvPostgresMaxConns, &cfg.PostgresMaxConns, positiveInt, "must be > 0")

	l.lower(EnvCacheDriver, &cfg.CacheDriver)
	l.duration(EnvCacheTTL, &cfg.CacheTTL, positiveDuration, "must be > 0")
	l.lower(EnvBasketDriver, &cfg.BasketDriver)
	l.duration(EnvBasketTTL, &cfg.BasketTTL, positiveDuration, "must be > 0")
	l.str(EnvRedisAddr, &cfg.RedisAddr)
	l.str(EnvRedisPassword, &cfg.RedisPassword)
	l.integer(EnvRedisDB, &cfg.RedisDB, nonNegativeInt, "must be >= 0")

	l.lower(EnvCatalogDriver, &cfg.CatalogDriver)
	l.str(EnvCatalogSQLitePath, &cfg.CatalogSQLitePath)
	l.str(EnvCatalogURL, &cfg.CatalogURL)
	l.duration(EnvCatalogTimeout, &cfg.CatalogTimeout, positiveDuration, "must be > 0")

	l.integer(EnvLowStockThreshold, &cfg.LowStockThreshold, positiveInt, "must be > 0")
	l.integer(EnvInStockThreshold, &cfg.InStockThreshold, positiveInt, "must be > 0")

	var policy string
	if l.lower(EnvPromoPolicy, &policy) {
		cfg.PromoPolicy = checkout.PromoPolicy(policy)
	}
	l.duration(EnvCheckoutTimeout, &cfg.CheckoutTimeout, positiveDuration, "must be > 0")
	l.duration(EnvCompensationTimeout, &cfg.CompensationTimeout, positiveDuration, "must be > 0")
	l.duration(EnvIdempotencyTTL, &cfg.IdempotencyTTL, positiveDuration, "must be > 0")

	l.duration(EnvReconcileInterval, &cfg.ReconcileInterval, positiveDuration, "must be > 0")
	l.duration(EnvReconcileGrace, &cfg.ReconcileGrace, positiveDuration, "must be > 0")
	l.integer(EnvReconcileBatchSize, &cfg.ReconcileBatchSize, positiveInt, "must be > 0")

	l.duration(EnvOutboxPollInterval, &cfg.OutboxPollInterval, positiveDuration, "must be > 0")
	l.integer(EnvOutboxBatchSize, &cfg.OutboxBatchSize, positiveInt, "must be > 0")
	l.integer(EnvOutboxMaxAttempts, &cfg.OutboxMaxAttempts, positiveInt, "must be > 0")
	l.duration(EnvOutboxRetryDelay, &cfg.OutboxRetryDelay, nonNegativeDuration, "must be >= 0")

	l.duration(EnvIdempotencyCleanupInterval, &cfg.IdempotencyCleanupInterval, positiveDuration, "must be > 0")
	l.integer(EnvIdempotencyCleanupBatchSize, &cfg.IdempotencyCleanupBatchSize, positiveInt, "must be > 0")

	l.str(EnvKafkaBrokers, &cfg.KafkaBrokers)
	l.str(EnvKafkaClientID, &cfg.KafkaClientID)
	l.str(EnvKafkaOrderTopic, &cfg.KafkaOrderTopic)
	l.str(EnvKafkaPaymentTopic, &cfg.KafkaPaymentTopic)
	l.str(EnvKafkaDLQTopic, &cfg.KafkaDLQTopic)
	l.str(EnvKafkaConsumerGroup, &cfg.KafkaConsumerGroup)

	l.str(EnvOTLPEndpoint, &cfg.OTLPEndpoint)
	l.boolean(EnvOTLPInsecure, &cfg.OTLPInsecure)
	l.ratio(EnvTraceSampleRatio, &cfg.TraceSampleRatio)

	return cfg, l.warnings
}

// Validate проверяет согласованность настроек, которые нельзя исправить значением по умолчанию.
func (c Config) Validate() error {
	var errs []error

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}

	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.PostgresDSN == "" {
			errs = append(errs, fmt.Errorf("%s is required for postgres storage", EnvPostgresDSN))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported storage driver %q", c.StorageDriver))
	}

	switch c.CacheDriver {
	case CacheDriverNone, CacheDriverMemory, CacheDriverRedis:
	default:
		errs = append(errs, fmt.Errorf("unsupported cache driver %q", c.CacheDriver))
	}
	switch c.BasketDriver {
	case BasketDriverMemory, BasketDriverRedis:
	default:
		errs = append(errs, fmt.Errorf("unsupported basket driver %q", c.BasketDriver))
	}
	if c.usesRedis() && c.RedisAddr == "" {
		errs = append(errs, fmt.Errorf("%s is required for redis drivers", EnvRedisAddr))
	}

	switch c.CatalogDriver {
	case CatalogDriverMemory:
	case CatalogDriverSQLite:
		if c.CatalogSQLitePath == "" {
			errs = append(errs, fmt.Errorf("%s is required for sqlite catalog", EnvCatalogSQLitePath))
		}
	case CatalogDriverHTTP:
		if c.CatalogURL == "" {
			errs = append(errs, fmt.Errorf("%s is required for http catalog", EnvCatalogURL))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported catalog driver %q", c.CatalogDriver))
	}

	if c.LowStockThreshold <= 0 || c.InStockThreshold < c.LowStockThreshold {
		errs = append(errs, fmt.Errorf("stock thresholds must satisfy 0 < low (%d) <= in-stock (%d)",
			c.LowStockThreshold, c.InStockThreshold))
	}

	switch c.PromoPolicy {
	case checkout.PromoPolicyAbort, checkout.PromoPolicyIgnore:
	default:
		errs = append(errs, fmt.Errorf("unsupported promo policy %q", c.PromoPolicy))
	}

	// Сверка не должна трогать заказы, которые ещё оформляются.
	if c.ReconcileGrace <= c.CheckoutTimeout {
		errs = append(errs, fmt.Errorf("reconcile grace (%s) must exceed checkout timeout (%s)",
			c.ReconcileGrace, c.CheckoutTimeout))
	}

	if c.KafkaEnabled() && (c.KafkaOrderTopic == "" || c.KafkaDLQTopic == "") {
		errs = append(errs, errors.New("kafka order and dlq topics are required when brokers are set"))
	}

	return errors.Join(errs...)
}

// KafkaEnabled сообщает, заданы ли брокеры.
func (c Config) KafkaEnabled() bool {
	return len(c.Brokers()) > 0
}

// Brokers разбирает KafkaBrokers, пропуская пустые элементы.
func (c Config) Brokers() []string {
	var out []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func (c Config) usesRedis() bool {
	return c.CacheDriver == CacheDriverRedis || c.BasketDriver == BasketDriverRedis
}

type loader struct {
	lookup   EnvLookup
	warnings []string
}

func (l *loader) value(key string) (string, bool) {
	raw, ok := l.lookup(key)
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

func (l *loader) warn(key, raw string, err error) {
	l.warnings = append(l.warnings, fmt.Sprintf("%s=%q ignored: %v", key, raw, err))
}

func (l *loader) str(key string, dst *string) bool {
	if v, ok := l.value(key); ok {
		*dst = v
		return true
	}
	return false
}

func (l *loader) lower(key string, dst *string) bool {
	if v, ok := l.value(key); ok {
		*dst = strings.ToLower(v)
		return true
	}
	return false
}

func (l *loader) boolean(key string, dst *bool) {
	raw, ok := l.value(key)
	if !ok {
		return
	}
	v, err := ParseBool(raw)
	if err != nil {
		l.warn(key, raw, err)
		return
	}
	*dst = v
}

func (l *loader) integer(key string, dst *int, valid func(int) bool, rule string) {
	raw, ok := l.value(key)
	if !ok {
		return
	}
	v, err := ParseInt(raw, valid, rule)
	if err != nil {
		l.warn(key, raw, err)
		return
	}
	*dst = v
}

func (l *loader) duration(key string, dst *time.Duration, valid func(time.Duration) bool, rule string) {
	raw, ok := l.value(key)
	if !ok {
		return
	}
	v, err := ParseDuration(raw, valid, rule)
	if err != nil {
		l.warn(key, raw, err)
		return
	}
	*dst = v
}

func (l *loader) ratio(key string, dst *float64) {
	raw, ok := l.value(key)
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err == nil && (v < 0 || v > 1) {
		err = errors.New("must be within [0, 1]")
	}
	if err != nil {
		l.warn(key, raw, err)
		return
	}
	*dst = v
}

// ParseBool понимает true/false, 1/0, yes/no, on/off без учёта регистра.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool value %q", raw)
	}
}

func ParseInt(raw string, valid func(int) bool, rule string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if valid != nil && !valid(v) {
		return 0, errors.New(rule)
	}
	return v, nil
}

func ParseDuration(raw string, valid func(time.Duration) bool, rule string) (time.Duration, error) {
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if valid != nil && !valid(v) {
		return 0, errors.New(rule)
	}
	return v, nil
}

func positiveInt(v int) bool { return v > 0 }
func nonNegativeInt(v int) bool { return v >= 0 }
func positiveDuration(v time.Duration) bool { return v > 0 }
func nonNegativeDuration(v time.Duration) bool { return v >= 0 }
