package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   payment credentials), security settings
// - default: Values common across all environments (timeouts, sweep hour,
//   standard settings)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Payment   PaymentConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02T15:04:05.000Z07:00"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// PaymentConfig describes the PayHere checkout integration. The sandbox
// values mirror the original deployment; amount is static until per-court
// pricing lands.
type PaymentConfig struct {
	MerchantID  string `envconfig:"PAYHERE_MERCHANT_ID" default:"1211149"`
	CheckoutURL string `envconfig:"PAYHERE_CHECKOUT_URL" default:"https://sandbox.payhere.lk/pay/checkout"`
	ReturnURL   string `envconfig:"PAYHERE_RETURN_URL" default:"http://localhost:8080/payment-success"`
	CancelURL   string `envconfig:"PAYHERE_CANCEL_URL" default:"http://localhost:8080/payment-cancel"`
	NotifyURL   string `envconfig:"PAYHERE_NOTIFY_URL" required:"true"`
	Currency    string `envconfig:"PAYMENT_CURRENCY" default:"LKR"`
	Amount      int64  `envconfig:"PAYMENT_AMOUNT" default:"1000"`
}

type SchedulerConfig struct {
	// Hour of day (0..23) at which the daily sweep runs.
	SweepHour int `envconfig:"SCHEDULER_SWEEP_HOUR" default:"9"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level: "error",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Payment: PaymentConfig{
			MerchantID:  "1211149",
			CheckoutURL: "https://sandbox.payhere.lk/pay/checkout",
			ReturnURL:   "http://localhost:8889/payment-success",
			CancelURL:   "http://localhost:8889/payment-cancel",
			NotifyURL:   "http://localhost:8889/api/payments/notify",
			Currency:    "LKR",
			Amount:      1000,
		},
		Scheduler: SchedulerConfig{
			SweepHour: 9,
		},
	}
}
