package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	Cosmic        CosmicConfig
	Sendgrid      SendgridConfig
	Contact       ContactConfig
	Cart          CartConfig
	AuthRateLimit AuthRateLimitConfig
	CORS          CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LUXE_APP_ENV" required:"true"`
	Port         string `envconfig:"LUXE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"LUXE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LUXE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"LUXE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"LUXE_REDIS_ADDR"`
	Password     string        `envconfig:"LUXE_REDIS_PASSWORD"`
	DB           int           `envconfig:"LUXE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LUXE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LUXE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LUXE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LUXE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LUXE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"LUXE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"LUXE_JWT_ISSUER" default:"luxe-boutique"`
	ExpirationMinutes int    `envconfig:"LUXE_JWT_EXPIRATION_MINUTES" default:"10080"`
}

// TokenTTL returns the access token lifetime configured in minutes.
// The default matches the storefront's seven day tokens.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"LUXE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"LUXE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"LUXE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"LUXE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"LUXE_ARGON_KEY_LEN" default:"32"`
}

type CosmicConfig struct {
	BaseURL    string        `envconfig:"LUXE_COSMIC_BASE_URL" default:"https://api.cosmicjs.com/v3"`
	BucketSlug string        `envconfig:"LUXE_COSMIC_BUCKET_SLUG" required:"true"`
	ReadKey    string        `envconfig:"LUXE_COSMIC_READ_KEY" required:"true"`
	WriteKey   string        `envconfig:"LUXE_COSMIC_WRITE_KEY"`
	Timeout    time.Duration `envconfig:"LUXE_COSMIC_TIMEOUT" default:"10s"`
}

type SendgridConfig struct {
	APIKey      string `envconfig:"LUXE_SENDGRID_API_KEY"`
	DefaultFrom string `envconfig:"LUXE_SENDGRID_FROM_EMAIL"`
	FromName    string `envconfig:"LUXE_SENDGRID_FROM_NAME" default:"Luxe Fashion Boutique"`
}

type ContactConfig struct {
	Recipient string `envconfig:"LUXE_CONTACT_RECIPIENT"`
}

type CartConfig struct {
	SessionCookie string `envconfig:"LUXE_CART_SESSION_COOKIE" default:"luxe_cart_session"`
	// SnapshotTTL of zero keeps snapshots until the client clears them.
	SnapshotTTL time.Duration `envconfig:"LUXE_CART_SNAPSHOT_TTL" default:"0"`
}

type AuthRateLimitConfig struct {
	LoginWindow      time.Duration `envconfig:"LUXE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit  int           `envconfig:"LUXE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit     int           `envconfig:"LUXE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow     time.Duration `envconfig:"LUXE_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit int           `envconfig:"LUXE_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit    int           `envconfig:"LUXE_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"LUXE_CORS_ORIGINS" default:"http://localhost:3000"`
}
