package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/service"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Network model.Network `long:"network" env:"PAYROLL_NETWORK" default:"preprod" description:"cardano network (mainnet, preprod, preview)"`

	BlockfrostProjectID string        `long:"blockfrost-project-id" env:"PAYROLL_BLOCKFROST_PROJECT_ID" description:"Blockfrost project id" required:"true"`
	BlockfrostURL       string        `long:"blockfrost-url" env:"PAYROLL_BLOCKFROST_URL" description:"Blockfrost base url, derived from the network when empty"`
	BlockfrostRPS       int           `long:"blockfrost-rps" env:"PAYROLL_BLOCKFROST_RPS" description:"max Blockfrost requests per second, 0 disables limiting" default:"10"`
	HTTPTimeout         time.Duration `long:"http-timeout" env:"PAYROLL_HTTP_TIMEOUT" description:"timeout for Blockfrost requests" default:"30s"`

	FundingSeed    string `long:"funding-seed" env:"PAYROLL_FUNDING_SEED" description:"hex ed25519 seed of the funding key" required:"true"`
	FundingAddress string `long:"funding-address" env:"PAYROLL_FUNDING_ADDRESS" description:"bech32 address controlled by the funding key" required:"true"`
	ChangeAddress  string `long:"change-address" env:"PAYROLL_CHANGE_ADDRESS" description:"address receiving change, defaults to the funding address"`
	ValidityWindow uint64 `long:"validity-window" env:"PAYROLL_VALIDITY_WINDOW" description:"slots until a built transaction expires" default:"7200"`

	SQLDialect string `long:"sql-dialect" env:"PAYROLL_SQL_DIALECT" description:"recipient store backend (mysql, sqlite)" default:"sqlite"`
	SQLDSN     string `long:"sql-dsn" env:"PAYROLL_SQL_DSN" description:"recipient store dsn" default:"file:payroll.db?_pragma=busy_timeout(5000)"`
	Migrate    bool   `long:"migrate" env:"PAYROLL_MIGRATE" description:"apply schema migrations at startup"`
	SeedFile   string `long:"seed-file" env:"PAYROLL_SEED_FILE" description:"TOML recipients inserted when the store is empty"`

	ScheduleCron     string        `long:"schedule-cron" env:"PAYROLL_SCHEDULE_CRON" description:"5-field cron expression, wins over the interval (default: 0 10 1 * * when neither is set)"`
	ScheduleInterval time.Duration `long:"schedule-interval" env:"PAYROLL_SCHEDULE_INTERVAL" description:"fixed interval between runs, used when the cron expression is empty"`
	RunTimeout       time.Duration `long:"run-timeout" env:"PAYROLL_RUN_TIMEOUT" description:"upper bound of a single run" default:"5m"`
	SubmitAttempts   int           `long:"submit-attempts" env:"PAYROLL_SUBMIT_ATTEMPTS" description:"submission attempts on transient failures" default:"4"`
	SubmitBackoff    time.Duration `long:"submit-backoff" env:"PAYROLL_SUBMIT_BACKOFF" description:"initial backoff between submission attempts" default:"2s"`
	RunOnce          bool          `long:"run-once" env:"PAYROLL_RUN_ONCE" description:"run payroll once and exit"`

	RedisAddr     string        `long:"redis-addr" env:"PAYROLL_REDIS_ADDR" description:"redis address for the cross-process run lock"`
	RedisPassword string        `long:"redis-password" env:"PAYROLL_REDIS_PASSWORD" description:"redis password"`
	RedisDB       int           `long:"redis-db" env:"PAYROLL_REDIS_DB" description:"redis database"`
	LockTTL       time.Duration `long:"lock-ttl" env:"PAYROLL_LOCK_TTL" description:"run lock lease, must exceed the run timeout" default:"10m"`

	KafkaBrokers []string `long:"kafka-brokers" env:"PAYROLL_KAFKA_BROKERS" env-delim:"," description:"kafka brokers for submitted transaction events"`
	KafkaTopic   string   `long:"kafka-topic" env:"PAYROLL_KAFKA_TOPIC" description:"kafka topic" default:"utxopayroll-transactions"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"PAYROLL_CLICKHOUSE_DSN" description:"ClickHouse DSN for the run journal"`

	OTLPEndpoint string `long:"otlp-endpoint" env:"PAYROLL_OTLP_ENDPOINT" description:"OTLP/HTTP traces endpoint, tracing is off when empty"`

	HTTPAddr       string   `long:"http-addr" env:"PAYROLL_HTTP_ADDR" description:"address of the REST API and /metrics" default:":8080"`
	AllowedOrigins []string `long:"allowed-origin" env:"PAYROLL_ALLOWED_ORIGINS" env-delim:"," description:"CORS allowed origins"`
}

const defaultScheduleCron = "0 10 1 * *"

// schedule picks the trigger timeline: an explicit cron expression, then an
// explicit interval, then the monthly default.
func (c config) schedule() service.ScheduleConfig {
	switch {
	case c.ScheduleCron != "":
		return service.ScheduleConfig{Cron: c.ScheduleCron}
	case c.ScheduleInterval > 0:
		return service.ScheduleConfig{Interval: c.ScheduleInterval}
	default:
		return service.ScheduleConfig{Cron: defaultScheduleCron}
	}
}

func (c config) validate() error {
	if _, err := c.Network.ID(); err != nil {
		return err
	}
	if c.RunTimeout <= 0 {
		return fmt.Errorf("run timeout must be positive, got %s", c.RunTimeout)
	}
	// A lease shorter than a run lets a second instance spend the same outputs.
	if c.RedisAddr != "" && c.LockTTL <= c.RunTimeout {
		return fmt.Errorf("lock ttl %s must exceed run timeout %s", c.LockTTL, c.RunTimeout)
	}
	return nil
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := loadDotEnv(); err != nil {
		logger.Fatal("failed to load .env", zap.Error(err))
	}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("payroll service failed", zap.Error(err))
	}
}
