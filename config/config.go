package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Port           string
	GinMode        string
	DBDriver       string
	DBDSN          string
	AutoMigrate    bool
	CustomersTable string
	Location       *time.Location
	CORSOrigin     string
	RateLimitRPS   float64
	RateLimitBurst int
	AMQPURL        string
	AMQPExchange   string
	LogFormat      string
}

// Load -> reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DBDSN:          os.Getenv("DB_DSN"),
		CustomersTable: getEnv("CUSTOMERS_TABLE", "clientes"),
		CORSOrigin:     getEnv("CORS_ORIGIN", "*"),
		AMQPURL:        os.Getenv("AMQP_URL"),
		AMQPExchange:   getEnv("AMQP_EXCHANGE", "backoffice.events"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}

	var err error
	if cfg.AutoMigrate, err = strconv.ParseBool(getEnv("AUTO_MIGRATE", "false")); err != nil {
		return nil, fmt.Errorf("AUTO_MIGRATE: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "40")); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	if cfg.Location, err = time.LoadLocation(getEnv("TIMEZONE", "America/Sao_Paulo")); err != nil {
		return nil, fmt.Errorf("TIMEZONE: %w", err)
	}

	if cfg.DBDSN == "" && cfg.DBDriver != "sqlite" {
		return nil, fmt.Errorf("DB_DSN is required for driver %q", cfg.DBDriver)
	}
	return cfg, nil
}

// InitDB -> opens the database selected by DB_DRIVER.
// postgres goes through pgx's database/sql driver so Supabase pooler DSNs work unchanged.
func InitDB(cfg *Config, l *logrus.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.New(l, logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		NowFunc: func() time.Time { return time.Now().In(cfg.Location) },
	}

	switch cfg.DBDriver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DBDSN), gormCfg)
	case "postgres":
		sqlDB, err := sql.Open("pgx", cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
	case "sqlite":
		dsn := cfg.DBDSN
		if dsn == "" {
			dsn = "backoffice.db"
		}
		return gorm.Open(sqlite.Open(dsn), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
