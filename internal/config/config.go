package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string
	Port int

	Log      LogConfig
	AWS      AWSConfig
	Tables   TablesConfig
	Payments PaymentsConfig
	Email    EmailConfig
	SMS      SMSConfig
	Redis    RedisConfig
	Tax      TaxConfig
	Billing  BillingConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// AWSConfig points the DynamoDB client at AWS or at a local endpoint.
type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type TablesConfig struct {
	QuoteRequests     string
	Invoices          string
	PaymentMilestones string
	ChangeRequests    string
	Payments          string
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string
	MockMode               bool
	Currency               string
	IdempotencyTTL         time.Duration
}

// EmailConfig configures the Resend mailer used by invoice send.
type EmailConfig struct {
	ResendAPIKey   string
	From           string
	PublicBaseURL  string
	BusinessName   string
	DisableSending bool
}

type SMSConfig struct {
	TwilioAccountSID string
	TwilioAuthToken  string
	From             string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// TaxConfig holds rates in basis points (1000 = 10%).
type TaxConfig struct {
	HospitalityBPS int64
	ServiceBPS     int64
}

type BillingConfig struct {
	RegenerationDebounce time.Duration
	OverdueSweepCron     string
	WorkerConcurrency    int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{
		Env:  v.GetString("ENV"),
		Port: v.GetInt("PORT"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.AWS = AWSConfig{
		Region:           v.GetString("AWS_REGION"),
		AccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
		SecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
	}

	cfg.Tables = TablesConfig{
		QuoteRequests:     v.GetString("QUOTE_REQUESTS_TABLE"),
		Invoices:          v.GetString("INVOICES_TABLE"),
		PaymentMilestones: v.GetString("PAYMENT_MILESTONES_TABLE"),
		ChangeRequests:    v.GetString("CHANGE_REQUESTS_TABLE"),
		Payments:          v.GetString("PAYMENTS_TABLE"),
	}

	cfg.Payments = PaymentsConfig{
		MercadoPagoAccessToken: v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
		MockMode:               v.GetBool("PAYMENT_GATEWAY_MOCK"),
		Currency:               v.GetString("PAYMENT_CURRENCY"),
		IdempotencyTTL:         parseDuration(v.GetString("PAYMENT_IDEMPOTENCY_TTL"), 10*time.Minute),
	}

	cfg.Email = EmailConfig{
		ResendAPIKey:   v.GetString("RESEND_API_KEY"),
		From:           v.GetString("EMAIL_FROM"),
		PublicBaseURL:  strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
		BusinessName:   v.GetString("BUSINESS_NAME"),
		DisableSending: v.GetBool("EMAIL_DISABLED"),
	}

	cfg.SMS = SMSConfig{
		TwilioAccountSID: v.GetString("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  v.GetString("TWILIO_AUTH_TOKEN"),
		From:             v.GetString("TWILIO_FROM_NUMBER"),
	}

	cfg.Redis = RedisConfig{
		Addr:     v.GetString("REDIS_ADDR"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Tax = TaxConfig{
		HospitalityBPS: v.GetInt64("TAX_HOSPITALITY_BPS"),
		ServiceBPS:     v.GetInt64("TAX_SERVICE_BPS"),
	}

	cfg.Billing = BillingConfig{
		RegenerationDebounce: parseDuration(v.GetString("MILESTONE_REGENERATION_DEBOUNCE"), 500*time.Millisecond),
		OverdueSweepCron:     v.GetString("OVERDUE_SWEEP_CRON"),
		WorkerConcurrency:    v.GetInt("WORKER_CONCURRENCY"),
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c != nil && c.Env == EnvProduction
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")

	v.SetDefault("QUOTE_REQUESTS_TABLE", "quote_requests")
	v.SetDefault("INVOICES_TABLE", "invoices")
	v.SetDefault("PAYMENT_MILESTONES_TABLE", "payment_milestones")
	v.SetDefault("CHANGE_REQUESTS_TABLE", "change_requests")
	v.SetDefault("PAYMENTS_TABLE", "payments")

	v.SetDefault("PAYMENT_GATEWAY_MOCK", false)
	v.SetDefault("PAYMENT_CURRENCY", "USD")
	v.SetDefault("PAYMENT_IDEMPOTENCY_TTL", "10m")

	v.SetDefault("EMAIL_FROM", "billing@example.com")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("BUSINESS_NAME", "Catering Co.")
	v.SetDefault("EMAIL_DISABLED", false)

	v.SetDefault("REDIS_ADDR", "127.0.0.1:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("TAX_HOSPITALITY_BPS", 1000)
	v.SetDefault("TAX_SERVICE_BPS", 600)

	v.SetDefault("MILESTONE_REGENERATION_DEBOUNCE", "500ms")
	v.SetDefault("OVERDUE_SWEEP_CRON", "@hourly")
	v.SetDefault("WORKER_CONCURRENCY", 5)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
