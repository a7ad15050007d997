package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	storefrontv1 "github.com/vladislavdragonenkov/storefront/proto/storefront/v1"
)

const (
	methodScenario = "scenario"
	methodCheckout = "Checkout"
	methodReplay   = "CheckoutReplay"
	methodGetOrder = "GetOrder"
	methodStock    = "GetStock"

	codeTransport = "transport_error"
)

type loadMode string

const (
	// modeCheckout — только оформление.
	modeCheckout loadMode = "checkout"
	// modeCheckoutRead — оформление и чтение заказа через кэшируемый путь.
	modeCheckoutRead loadMode = "checkout-read"
	// modeCheckoutReplay — оформление и повтор с тем же Idempotency-Key.
	modeCheckoutReplay loadMode = "checkout-replay"
)

type config struct {
	baseURL     string
	adminAddr   string
	total       int
	totalSet    bool
	duration    time.Duration
	concurrency int
	timeout     time.Duration
	mode        loadMode
	productID   int64
	size        int
	quantity    int
	seedStock   int
	promoCode   string
	outputPath  string
}

type latencySummary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

type methodReport struct {
	Calls     int64            `json:"calls"`
	Success   int64            `json:"success"`
	Failed    int64            `json:"failed"`
	ErrorRate float64          `json:"error_rate"`
	Codes     map[string]int64 `json:"codes"`
	LatencyMs latencySummary   `json:"latency_ms"`
}

// stockCheck — сверка остатков после прогона: продано не больше, чем было заведено.
type stockCheck struct {
	Seeded     int  `json:"seeded"`
	Remaining  int  `json:"remaining"`
	SoldUnits  int  `json:"sold_units"`
	Consistent bool `json:"consistent"`
}

type report struct {
	StartedAt         time.Time               `json:"started_at"`
	DurationSeconds   float64                 `json:"duration_seconds"`
	TotalScenarios    int64                   `json:"total_scenarios"`
	SuccessScenarios  int64                   `json:"success_scenarios"`
	FailedScenarios   int64                   `json:"failed_scenarios"`
	PlacedOrders      int64                   `json:"placed_orders"`
	SoldOut           int64                   `json:"sold_out"`
	ErrorRate         float64                 `json:"error_rate"`
	RPS               float64                 `json:"rps"`
	ScenarioLatencyMs latencySummary          `json:"scenario_latency_ms"`
	Methods           map[string]methodReport `json:"methods"`
	Stock             *stockCheck             `json:"stock,omitempty"`
}

type methodStats struct {
	calls     int64
	success   int64
	failed    int64
	codes     map[string]int64
	latencies []float64
}

type collector struct {
	mu      sync.Mutex
	methods map[string]*methodStats
	placed  int64
	soldOut int64
}

func newCollector() *collector {
	return &collector{
		methods: make(map[string]*methodStats),
	}
}

func (c *collector) record(method string, latency time.Duration, code string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats, found := c.methods[method]
	if !found {
		stats = &methodStats{
			codes: make(map[string]int64),
		}
		c.methods[method] = stats
	}

	stats.calls++
	if ok {
		stats.success++
	} else {
		stats.failed++
	}
	stats.codes[code]++
	stats.latencies = append(stats.latencies, float64(latency.Microseconds())/1000.0)
}

func (c *collector) outcome(placed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if placed {
		c.placed++
	} else {
		c.soldOut++
	}
}

func (c *collector) buildReport(startedAt time.Time, duration time.Duration) report {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := report{
		StartedAt:       startedAt.UTC(),
		DurationSeconds: duration.Seconds(),
		PlacedOrders:    c.placed,
		SoldOut:         c.soldOut,
		Methods:         make(map[string]methodReport, len(c.methods)),
	}

	if scenarioStats := c.methods[methodScenario]; scenarioStats != nil {
		result.TotalScenarios = scenarioStats.calls
		result.SuccessScenarios = scenarioStats.success
		result.FailedScenarios = scenarioStats.failed
		result.ErrorRate = ratio(scenarioStats.failed, scenarioStats.calls)
		result.ScenarioLatencyMs = buildLatencySummary(scenarioStats.latencies)
	}
	if duration > 0 {
		result.RPS = float64(result.TotalScenarios) / duration.Seconds()
	}

	for name, stats := range c.methods {
		codesCopy := make(map[string]int64, len(stats.codes))
		for code, count := range stats.codes {
			codesCopy[code] = count
		}
		result.Methods[name] = methodReport{
			Calls:     stats.calls,
			Success:   stats.success,
			Failed:    stats.failed,
			ErrorRate: ratio(stats.failed, stats.calls),
			Codes:     codesCopy,
			LatencyMs: buildLatencySummary(stats.latencies),
		}
	}

	return result
}

func parseConfig(args []string) (config, error) {
	var (
		cfg       config
		modeValue string
	)

	fs := flag.NewFlagSet("loadtest", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.baseURL, "url", "http://localhost:8080", "storefront HTTP base URL")
	fs.StringVar(&cfg.adminAddr, "admin-addr", "", "gRPC admin address used to seed stock (empty: no seeding)")
	fs.IntVar(&cfg.total, "total", 400, "total scenarios to execute in count mode; in duration mode only used when explicitly set")
	fs.DurationVar(&cfg.duration, "duration", 0, "optional time-based run duration (e.g. 10m, 15m)")
	fs.IntVar(&cfg.concurrency, "concurrency", 40, "number of concurrent workers")
	fs.DurationVar(&cfg.timeout, "timeout", 5*time.Second, "per-request timeout")
	fs.StringVar(&modeValue, "mode", string(modeCheckout), "load mode: checkout | checkout-read | checkout-replay")
	fs.Int64Var(&cfg.productID, "product", 1, "product id to order")
	fs.IntVar(&cfg.size, "size", 40, "product size to order")
	fs.IntVar(&cfg.quantity, "quantity", 1, "units per checkout")
	fs.IntVar(&cfg.seedStock, "seed-stock", 0, "set stock to this value before the run (requires -admin-addr)")
	fs.StringVar(&cfg.promoCode, "promo", "", "optional promo code applied to every checkout")
	fs.StringVar(&cfg.outputPath, "output", "", "optional JSON report output file path")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "total" {
			cfg.totalSet = true
		}
	})

	mode, err := parseMode(modeValue)
	if err != nil {
		return cfg, err
	}
	cfg.mode = mode
	cfg.baseURL = strings.TrimRight(strings.TrimSpace(cfg.baseURL), "/")
	cfg.adminAddr = strings.TrimSpace(cfg.adminAddr)

	switch {
	case cfg.baseURL == "":
		return cfg, errors.New("url is required")
	case cfg.duration < 0:
		return cfg, errors.New("duration must be >= 0")
	case cfg.duration == 0 && cfg.total <= 0:
		return cfg, errors.New("total must be > 0 when duration is not set")
	case cfg.duration > 0 && cfg.totalSet && cfg.total <= 0:
		return cfg, errors.New("total must be > 0 when explicitly set with duration")
	case cfg.concurrency <= 0:
		return cfg, errors.New("concurrency must be > 0")
	case cfg.timeout <= 0:
		return cfg, errors.New("timeout must be > 0")
	case cfg.productID <= 0:
		return cfg, errors.New("product must be > 0")
	case cfg.quantity <= 0:
		return cfg, errors.New("quantity must be > 0")
	case cfg.seedStock < 0:
		return cfg, errors.New("seed-stock must be >= 0")
	case cfg.seedStock > 0 && cfg.adminAddr == "":
		return cfg, errors.New("seed-stock requires admin-addr")
	}

	return cfg, nil
}

func parseMode(value string) (loadMode, error) {
	switch mode := loadMode(strings.TrimSpace(value)); mode {
	case modeCheckout, modeCheckoutRead, modeCheckoutReplay:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported mode: %s", value)
	}
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var seeder stockSeeder
	if cfg.adminAddr != "" {
		conn, dialErr := grpc.NewClient(cfg.adminAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if dialErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to create grpc admin connection: %v\n", dialErr)
			os.Exit(1)
		}
		defer conn.Close()
		seeder = storefrontv1.NewAdminServiceClient(conn)
	}

	result, err := run(ctx, cfg, newAPIClient(cfg.baseURL, cfg.timeout), seeder)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "load test failed: %v\n", err)
		os.Exit(1)
	}

	printReport(os.Stdout, result, cfg)
	if cfg.outputPath != "" {
		if err := writeJSONReport(cfg.outputPath, result); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
			os.Exit(1)
		}
	}

	if result.FailedScenarios > 0 || (result.Stock != nil && !result.Stock.Consistent) {
		os.Exit(1)
	}
}

// stockSeeder — часть админского gRPC-клиента, нужная для подготовки остатков.
type stockSeeder interface {
	SetStock(ctx context.Context, in *storefrontv1.StockRequest, opts ...grpc.CallOption) (*storefrontv1.StockResponse, error)
}

func run(ctx context.Context, cfg config, api storefrontAPI, seeder stockSeeder) (report, error) {
	if api == nil {
		return report{}, errors.New("storefront api client is required")
	}
	if cfg.seedStock > 0 {
		if seeder == nil {
			return report{}, errors.New("stock seeder is required when seed-stock is set")
		}
		seedCtx, cancel := context.WithTimeout(ctx, cfg.timeout)
		_, err := seeder.SetStock(seedCtx, &storefrontv1.StockRequest{
			ProductId: cfg.productID,
			Size:      int32(cfg.size),
			Quantity:  int32(cfg.seedStock),
		})
		cancel()
		if err != nil {
			return report{}, fmt.Errorf("seed stock: %w", err)
		}
	}

	startedAt := time.Now()
	runID := strconv.FormatInt(startedAt.UnixNano(), 36)
	col := newCollector()

	jobs := make(chan int, cfg.concurrency*2)
	var wg sync.WaitGroup
	for range cfg.concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				_ = runScenario(ctx, api, cfg, id, runID, col)
			}
		}()
	}

	dispatchJobs(ctx, jobs, cfg)
	wg.Wait()

	result := col.buildReport(startedAt, time.Since(startedAt))

	if cfg.seedStock > 0 {
		check, err := verifyStock(ctx, api, cfg, result.PlacedOrders, col)
		if err != nil {
			return result, err
		}
		result.Stock = &check
	}
	return result, nil
}

func dispatchJobs(ctx context.Context, jobs chan<- int, cfg config) {
	defer close(jobs)

	var deadline <-chan time.Time
	if cfg.duration > 0 {
		timer := time.NewTimer(cfg.duration)
		defer timer.Stop()
		deadline = timer.C
	}

	for i := 0; ; i++ {
		if (cfg.duration <= 0 || cfg.totalSet) && i >= cfg.total {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-deadline:
			return
		case jobs <- i:
		}
	}
}

func runScenario(ctx context.Context, api storefrontAPI, cfg config, index int, runID string, col *collector) (err error) {
	scenarioStart := time.Now()
	code := strconv.Itoa(http.StatusCreated)
	defer func() {
		col.record(methodScenario, time.Since(scenarioStart), code, err == nil)
	}()

	key := fmt.Sprintf("lt-%s-%d", runID, index)
	body := checkoutBody{
		CustomerID: fmt.Sprintf("load-%s-%d", runID, index),
		Recipient: recipient{
			Name:    "Load Test",
			Address: fmt.Sprintf("Test street %d", index),
			Phone:   "+70000000000",
		},
		PromoCode: cfg.promoCode,
		Source:    "site",
		Lines:     []checkoutLine{{ProductID: cfg.productID, Size: cfg.size, Quantity: cfg.quantity}},
	}

	first, err := timedCheckout(ctx, api, cfg.timeout, methodCheckout, key, body, col)
	code = first.code()
	if err != nil {
		return err
	}
	if !first.placed() {
		col.outcome(false)
		return nil
	}
	col.outcome(true)

	switch cfg.mode {
	case modeCheckoutRead:
		status, err := timedGetOrder(ctx, api, cfg.timeout, first.Result.OrderNumber, col)
		if err != nil {
			code = codeTransport
			return err
		}
		if status != http.StatusOK {
			code = strconv.Itoa(status)
			return fmt.Errorf("get order %s: unexpected status %d", first.Result.OrderNumber, status)
		}
	case modeCheckoutReplay:
		replay, err := timedCheckout(ctx, api, cfg.timeout, methodReplay, key, body, col)
		if err != nil {
			code = replay.code()
			return err
		}
		if replay.Result.OrderNumber != first.Result.OrderNumber {
			code = "replay_mismatch"
			return fmt.Errorf("replay returned order %q, want %q", replay.Result.OrderNumber, first.Result.OrderNumber)
		}
	}

	return nil
}

// checkoutOutcome — ответ API на оформление. 409 insufficient_stock считается
// штатным исходом под конкуренцией, остальные ошибки — провалом сценария.
type checkoutOutcome struct {
	Status int
	Result checkoutResult
	Error  string
}

func (o checkoutOutcome) placed() bool { return o.Status == http.StatusCreated }

func (o checkoutOutcome) soldOut() bool {
	return o.Status == http.StatusConflict && o.Error == "insufficient_stock"
}

func (o checkoutOutcome) code() string {
	if o.Status == 0 {
		return codeTransport
	}
	if o.Error != "" {
		return strconv.Itoa(o.Status) + " " + o.Error
	}
	return strconv.Itoa(o.Status)
}

func timedCheckout(
	ctx context.Context,
	api storefrontAPI,
	timeout time.Duration,
	method, key string,
	body checkoutBody,
	col *collector,
) (checkoutOutcome, error) {
	start := time.Now()
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := api.Checkout(callCtx, key, body)
	if err == nil && !out.placed() && !out.soldOut() {
		err = fmt.Errorf("checkout: unexpected status %s", out.code())
	}
	col.record(method, time.Since(start), out.code(), err == nil)
	return out, err
}

func timedGetOrder(ctx context.Context, api storefrontAPI, timeout time.Duration, number string, col *collector) (int, error) {
	start := time.Now()
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	status, err := api.GetOrder(callCtx, number)
	code := strconv.Itoa(status)
	if err != nil {
		code = codeTransport
	}
	col.record(methodGetOrder, time.Since(start), code, err == nil && status == http.StatusOK)
	return status, err
}

func verifyStock(ctx context.Context, api storefrontAPI, cfg config, placed int64, col *collector) (stockCheck, error) {
	start := time.Now()
	callCtx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	remaining, err := api.Stock(callCtx, cfg.productID, cfg.size)
	col.record(methodStock, time.Since(start), strconv.Itoa(http.StatusOK), err == nil)
	if err != nil {
		return stockCheck{}, fmt.Errorf("read stock after run: %w", err)
	}

	sold := int(placed) * cfg.quantity
	return stockCheck{
		Seeded:     cfg.seedStock,
		Remaining:  remaining,
		SoldUnits:  sold,
		Consistent: remaining >= 0 && sold+remaining == cfg.seedStock,
	}, nil
}

func writeJSONReport(path string, result report) error {
	cleanPath := filepath.Clean(path)
	if cleanPath == "." || cleanPath == string(filepath.Separator) {
		return errors.New("output path must point to a file")
	}
	if cleanPath == ".." || strings.HasPrefix(cleanPath, ".."+string(filepath.Separator)) {
		return fmt.Errorf("output path must be inside current directory: %s", path)
	}

	// #nosec G304 -- path is an explicit CLI output parameter for local load-test reports.
	file, err := os.Create(cleanPath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func printReport(w io.Writer, result report, cfg config) {
	_, _ = fmt.Fprintln(w, "Load test summary")
	_, _ = fmt.Fprintf(w, "mode=%s run=%s total=%d success=%d failed=%d error_rate=%.4f\n",
		cfg.mode,
		runTarget(cfg),
		result.TotalScenarios,
		result.SuccessScenarios,
		result.FailedScenarios,
		result.ErrorRate,
	)
	_, _ = fmt.Fprintf(w, "placed=%d sold_out=%d duration=%.2fs rps=%.2f\n",
		result.PlacedOrders, result.SoldOut, result.DurationSeconds, result.RPS)
	_, _ = fmt.Fprintf(w, "scenario latency ms: min=%.2f avg=%.2f p50=%.2f p95=%.2f p99=%.2f max=%.2f\n",
		result.ScenarioLatencyMs.Min,
		result.ScenarioLatencyMs.Avg,
		result.ScenarioLatencyMs.P50,
		result.ScenarioLatencyMs.P95,
		result.ScenarioLatencyMs.P99,
		result.ScenarioLatencyMs.Max,
	)

	methodNames := make([]string, 0, len(result.Methods))
	for name := range result.Methods {
		if name == methodScenario {
			continue
		}
		methodNames = append(methodNames, name)
	}
	sort.Strings(methodNames)
	for _, name := range methodNames {
		stats := result.Methods[name]
		_, _ = fmt.Fprintf(w,
			"%s: calls=%d success=%d failed=%d error_rate=%.4f p95=%.2fms\n",
			name,
			stats.Calls,
			stats.Success,
			stats.Failed,
			stats.ErrorRate,
			stats.LatencyMs.P95,
		)
	}

	if result.Stock != nil {
		verdict := "ok"
		if !result.Stock.Consistent {
			verdict = "OVERSOLD OR LOST UNITS"
		}
		_, _ = fmt.Fprintf(w, "stock: seeded=%d sold=%d remaining=%d %s\n",
			result.Stock.Seeded, result.Stock.SoldUnits, result.Stock.Remaining, verdict)
	}
}

func runTarget(cfg config) string {
	if cfg.duration <= 0 {
		return fmt.Sprintf("count:%d", cfg.total)
	}
	if cfg.totalSet {
		return fmt.Sprintf("duration:%s,max-total:%d", cfg.duration, cfg.total)
	}
	return fmt.Sprintf("duration:%s", cfg.duration)
}

func buildLatencySummary(values []float64) latencySummary {
	if len(values) == 0 {
		return latencySummary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, value := range sorted {
		sum += value
	}

	return latencySummary{
		Min: sorted[0],
		Max: sorted[len(sorted)-1],
		Avg: sum / float64(len(sorted)),
		P50: percentile(sorted, 50),
		P95: percentile(sorted, 95),
		P99: percentile(sorted, 99),
	}
}

func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := (p / 100.0) * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}

	weight := rank - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*weight
}

func ratio(failed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(failed) / float64(total)
}
