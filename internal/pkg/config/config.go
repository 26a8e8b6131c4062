package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - empty optional: an external collaborator (Redis, RabbitMQ, OTLP) is disabled when its address is empty
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	AMQP      AMQPConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Engine    EngineConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"5s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Channel  string `envconfig:"REDIS_CHANNEL" default:"fittingroom:changes"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type AMQPConfig struct {
	URL   string `envconfig:"AMQP_URL"`
	Queue string `envconfig:"AMQP_QUEUE" default:"queue.promoted"`
}

func (c AMQPConfig) Enabled() bool {
	return c.URL != ""
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// EngineConfig holds the reservation and queue timings.
type EngineConfig struct {
	LeaseDuration   time.Duration `envconfig:"LEASE_DURATION" default:"5m"`
	PerTurn         time.Duration `envconfig:"QUEUE_PER_TURN" default:"5m"`
	SweepInterval   time.Duration `envconfig:"SWEEP_INTERVAL" default:"5s"`
	NotifyGrace     time.Duration `envconfig:"NOTIFY_GRACE" default:"3m"`
	StreamHeartbeat time.Duration `envconfig:"STREAM_HEARTBEAT" default:"15s"`
}

type TelemetryConfig struct {
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"fittingroom"`
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure     bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"false"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads .env (or ENV_FILE) when present, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Engine.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid engine config: %w", err)
	}
	return cfg, nil
}

// Validate requires every engine timing to be positive.
func (e EngineConfig) Validate() error {
	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"LEASE_DURATION", e.LeaseDuration},
		{"QUEUE_PER_TURN", e.PerTurn},
		{"SWEEP_INTERVAL", e.SweepInterval},
		{"NOTIFY_GRACE", e.NotifyGrace},
		{"STREAM_HEARTBEAT", e.StreamHeartbeat},
	} {
		if d.value <= 0 {
			return fmt.Errorf("%s must be positive, got %s", d.name, d.value)
		}
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 50,
		},
		Redis: RedisConfig{
			Channel: "fittingroom:changes",
		},
		AMQP: AMQPConfig{
			Queue: "queue.promoted",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-e2e",
			Duration: time.Hour,
		},
		Engine: EngineConfig{
			LeaseDuration:   5 * time.Minute,
			PerTurn:         5 * time.Minute,
			SweepInterval:   time.Hour, // sweeps are driven by tests directly
			NotifyGrace:     3 * time.Minute,
			StreamHeartbeat: time.Second,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "fittingroom-test",
		},
	}
}
