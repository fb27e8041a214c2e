package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `env:"ENV" env-required:"true"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Database   Database
	Limiter    Limiter
	Auth       AuthConfig
	SMTP       SMTPConfig
	Email      EmailConfig
	Cache      Cache
	Admin      AdminConfig
	Workshop   WorkshopConfig
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
	AllowedOrigins []string      `env:"HTTP_ALLOWED_ORIGINS" env-default:"http://localhost:3000"`
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER" env-required:"true"`
	DBName             string        `env:"DB_NAME" env-required:"true"`
	User               string        `env:"DB_USER" env-required:"true"`
	Password           string        `env:"DB_PASSWORD" env-required:"true"`
	TimeZone           string        `env:"DB_TIMEZONE"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"40"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"40"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type AuthConfig struct {
	JWT JWTConfig
	// GoogleAudience is the OAuth client id Google ID tokens must be issued
	// for.
	GoogleAudience string `env:"AUTH_GOOGLE_AUDIENCE" env-required:"true"`
}

type JWTConfig struct {
	AccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL" env-default:"24h"`
	SigningKey     string        `env:"JWT_SIGNING_KEY" env-required:"true"`
}

type SMTPConfig struct {
	Host string `env:"SMTP_HOST" env-required:"true"`
	Port int    `env:"SMTP_PORT" env-required:"true"`
	From string `env:"SMTP_FROM" env-required:"true"`
	Pass string `env:"SMTP_PASS" env-required:"true"`
}

type EmailConfig struct {
	Enabled   bool `env:"EMAIL_ENABLED" env-default:"false"`
	Templates EmailTemplates
	// NotifyEmails receive a copy of every submitted registration and every
	// contact message.
	NotifyEmails []string `env:"EMAIL_NOTIFY_ADDRS" env-default:""`
}

type EmailTemplates struct {
	RegistrationReceived string `env:"EMAIL_TEMPLATE_REGISTRATION_RECEIVED" env-default:"registration_received.html"`
	ContactMessage       string `env:"EMAIL_TEMPLATE_CONTACT_MESSAGE" env-default:"contact_message.html"`
}

type Cache struct {
	Type  string `env:"REDIS_TYPE" env-required:"true" env-description:"specifies provider, one of redis/redisCluster"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
}

// AdminConfig is the static authorization policy for the admin console,
// injectable so the allow-list changes without a redeploy.
type AdminConfig struct {
	Emails []string `env:"ADMIN_EMAILS" env-required:"true" env-description:"comma-separated admin account emails"`
}

// WorkshopConfig carries the event details printed on tickets and the public
// origin used to build verification URLs.
type WorkshopConfig struct {
	EventName    string `env:"WORKSHOP_EVENT_NAME" env-default:"REACH - The Best Version of You"`
	EventDates   string `env:"WORKSHOP_EVENT_DATES" env-default:"August 9th & 10th, 2025"`
	Venue        string `env:"WORKSHOP_VENUE" env-default:"Fireflies Intercultural Center"`
	VenueAddress string `env:"WORKSHOP_VENUE_ADDRESS" env-default:"Kanakapura Road, Kaggalipura, Bengaluru"`
	Organizer    string `env:"WORKSHOP_ORGANIZER" env-default:"Vishwa Poornima's"`
	Tagline      string `env:"WORKSHOP_TAGLINE" env-default:"Yoga Centre for Complete Health"`
	// BaseURL is the public site origin, no trailing slash.
	BaseURL string `env:"WORKSHOP_BASE_URL" env-required:"true"`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return &cfg
}
