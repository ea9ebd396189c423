package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret          string
	JWTExpiryDuration  time.Duration
	JWTIssuer          string
	ResetTokenDuration time.Duration

	// External OAuth providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FacebookAppID      string `mapstructure:"FACEBOOK_APP_ID"`
	FacebookAppSecret  string `mapstructure:"FACEBOOK_APP_SECRET"`

	// Object storage (S3-compatible)
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool
	StoragePublicURL string

	// Outbound mail (password reset OTPs)
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	// ABN lookup
	ABNLookupURL  string
	ABNLookupGUID string

	// Analytics
	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and a .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "720h")
	viper.SetDefault("JWT_ISSUER", "invomate-app")
	viper.SetDefault("RESET_TOKEN_DURATION", "15m")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FACEBOOK_APP_ID", "")
	viper.SetDefault("FACEBOOK_APP_SECRET", "")
	viper.SetDefault("STORAGE_ENDPOINT", "")
	viper.SetDefault("STORAGE_ACCESS_KEY", "")
	viper.SetDefault("STORAGE_SECRET_KEY", "")
	viper.SetDefault("STORAGE_BUCKET", "invomate-documents")
	viper.SetDefault("STORAGE_USE_SSL", true)
	viper.SetDefault("STORAGE_PUBLIC_URL", "")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "")
	viper.SetDefault("ABN_LOOKUP_API_URL", "https://abr.business.gov.au/json/AbnDetails.aspx")
	viper.SetDefault("ABN_LOOKUP_GUID", "")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 24 * 30
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	resetTokenStr := viper.GetString("RESET_TOKEN_DURATION")
	resetTokenDuration, err := time.ParseDuration(resetTokenStr)
	if err != nil {
		resetTokenDuration = 15 * time.Minute
		log.Printf("Warning: Invalid value for RESET_TOKEN_DURATION ('%s'). Defaulting to %s.\n", resetTokenStr, resetTokenDuration.String())
	}
	cfg.ResetTokenDuration = resetTokenDuration

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google OAuth will not function.")
	}
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FacebookAppID = viper.GetString("FACEBOOK_APP_ID")
	cfg.FacebookAppSecret = viper.GetString("FACEBOOK_APP_SECRET")
	if cfg.FacebookAppID == "" || cfg.FacebookAppSecret == "" {
		log.Println("Warning: FACEBOOK_APP_ID/FACEBOOK_APP_SECRET not set. Facebook OAuth will not function.")
	}

	cfg.StorageEndpoint = viper.GetString("STORAGE_ENDPOINT")
	cfg.StorageAccessKey = viper.GetString("STORAGE_ACCESS_KEY")
	cfg.StorageSecretKey = viper.GetString("STORAGE_SECRET_KEY")
	cfg.StorageBucket = viper.GetString("STORAGE_BUCKET")
	cfg.StorageUseSSL = viper.GetBool("STORAGE_USE_SSL")
	cfg.StoragePublicURL = viper.GetString("STORAGE_PUBLIC_URL")
	if cfg.StorageEndpoint == "" {
		log.Println("Warning: STORAGE_ENDPOINT not set. PDF upload will not function.")
	}

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	cfg.SMTPUser = viper.GetString("SMTP_USER")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.SMTPFrom = viper.GetString("SMTP_FROM")
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUser
	}

	cfg.ABNLookupURL = viper.GetString("ABN_LOOKUP_API_URL")
	cfg.ABNLookupGUID = viper.GetString("ABN_LOOKUP_GUID")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
