package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	Auth    AuthConfig
	S3      S3Config
	Log     LogConfig
	CORS    CORSConfig
	Email   EmailConfig
	Company CompanyConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// AuthConfig holds the operator login settings. An empty PasswordHash leaves
// the API open, which is how the tool runs on a trusted local machine.
type AuthConfig struct {
	PasswordHash string `mapstructure:"password_hash"`
}

// Enabled reports whether the API requires an operator token.
func (a *AuthConfig) Enabled() bool {
	return a.PasswordHash != ""
}

// S3Config holds object storage settings for archived invoice PDFs.
type S3Config struct {
	Enabled       bool   `mapstructure:"enabled"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	KeyPrefix     string `mapstructure:"key_prefix"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// CompanyConfig holds the issuing company's defaults: the values the invoice
// form is prefilled with and the branding printed on every PDF.
type CompanyConfig struct {
	Name          string `mapstructure:"name"`
	Address       string `mapstructure:"address"`
	Email         string `mapstructure:"email"`
	Phone         string `mapstructure:"phone"`
	Website       string `mapstructure:"website"`
	PANNumber     string `mapstructure:"pan_number"`
	AccountNumber string `mapstructure:"account_number"`
	AccountName   string `mapstructure:"account_name"`
	IFSCCode      string `mapstructure:"ifsc_code"`
	Branch        string `mapstructure:"branch"`
	UPIID         string `mapstructure:"upi_id"`
	Signatory     string `mapstructure:"signatory"`
	LogoPath      string `mapstructure:"logo_path"`
	SignaturePath string `mapstructure:"signature_path"`
}

// Load reads configuration from an optional .env file and environment variables
// with the INVOICEDESK_ prefix.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("INVOICEDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":3000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "invoicedesk")
	v.SetDefault("db.password", "invoicedesk_secret")
	v.SetDefault("db.name", "invoicedesk")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 10)
	v.SetDefault("db.max_idle", 5)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "12h")
	v.SetDefault("jwt.refresh_expiry", "720h")
	v.SetDefault("jwt.issuer", "invoicedesk")

	v.SetDefault("auth.password_hash", "")

	// S3 defaults
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "invoicedesk-documents")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.key_prefix", "invoices")
	v.SetDefault("s3.presign_expiry", 604800)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:4200,http://127.0.0.1:4200")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "billing@example.com")
	v.SetDefault("email.from_name", "Billing")

	// Company defaults
	v.SetDefault("company.name", "")
	v.SetDefault("company.signatory", "")
	v.SetDefault("company.logo_path", "assets/logo.png")
	v.SetDefault("company.signature_path", "assets/signature.png")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "INVOICEDESK_SERVER_PORT",
		"server.read_timeout":     "INVOICEDESK_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "INVOICEDESK_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout": "INVOICEDESK_SERVER_SHUTDOWN_TIMEOUT",
		"server.environment":      "INVOICEDESK_SERVER_ENVIRONMENT",
		"db.host":                 "INVOICEDESK_DB_HOST",
		"db.port":                 "INVOICEDESK_DB_PORT",
		"db.user":                 "INVOICEDESK_DB_USER",
		"db.password":             "INVOICEDESK_DB_PASSWORD",
		"db.name":                 "INVOICEDESK_DB_NAME",
		"db.sslmode":              "INVOICEDESK_DB_SSLMODE",
		"db.max_open":             "INVOICEDESK_DB_MAX_OPEN",
		"db.max_idle":             "INVOICEDESK_DB_MAX_IDLE",
		"jwt.secret":              "INVOICEDESK_JWT_SECRET",
		"jwt.access_expiry":       "INVOICEDESK_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":      "INVOICEDESK_JWT_REFRESH_EXPIRY",
		"jwt.issuer":              "INVOICEDESK_JWT_ISSUER",
		"auth.password_hash":      "INVOICEDESK_AUTH_PASSWORD_HASH",
		"s3.enabled":              "INVOICEDESK_S3_ENABLED",
		"s3.region":               "INVOICEDESK_S3_REGION",
		"s3.bucket":               "INVOICEDESK_S3_BUCKET",
		"s3.endpoint":             "INVOICEDESK_S3_ENDPOINT",
		"s3.access_key":           "INVOICEDESK_S3_ACCESS_KEY",
		"s3.secret_key":           "INVOICEDESK_S3_SECRET_KEY",
		"s3.key_prefix":           "INVOICEDESK_S3_KEY_PREFIX",
		"s3.presign_expiry":       "INVOICEDESK_S3_PRESIGN_EXPIRY",
		"log.level":               "INVOICEDESK_LOG_LEVEL",
		"log.format":              "INVOICEDESK_LOG_FORMAT",
		"cors.allowed_origins":    "INVOICEDESK_CORS_ALLOWED_ORIGINS",
		"email.provider":          "INVOICEDESK_EMAIL_PROVIDER",
		"email.region":            "INVOICEDESK_EMAIL_REGION",
		"email.from_address":      "INVOICEDESK_EMAIL_FROM_ADDRESS",
		"email.from_name":         "INVOICEDESK_EMAIL_FROM_NAME",
		"company.name":            "INVOICEDESK_COMPANY_NAME",
		"company.address":         "INVOICEDESK_COMPANY_ADDRESS",
		"company.email":           "INVOICEDESK_COMPANY_EMAIL",
		"company.phone":           "INVOICEDESK_COMPANY_PHONE",
		"company.website":         "INVOICEDESK_COMPANY_WEBSITE",
		"company.pan_number":      "INVOICEDESK_COMPANY_PAN_NUMBER",
		"company.account_number":  "INVOICEDESK_COMPANY_ACCOUNT_NUMBER",
		"company.account_name":    "INVOICEDESK_COMPANY_ACCOUNT_NAME",
		"company.ifsc_code":       "INVOICEDESK_COMPANY_IFSC_CODE",
		"company.branch":          "INVOICEDESK_COMPANY_BRANCH",
		"company.upi_id":          "INVOICEDESK_COMPANY_UPI_ID",
		"company.signatory":       "INVOICEDESK_COMPANY_SIGNATORY",
		"company.logo_path":       "INVOICEDESK_COMPANY_LOGO_PATH",
		"company.signature_path":  "INVOICEDESK_COMPANY_SIGNATURE_PATH",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it if INVOICEDESK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("INVOICEDESK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Auth = AuthConfig{
		PasswordHash: v.GetString("auth.password_hash"),
	}
	cfg.S3 = S3Config{
		Enabled:       v.GetBool("s3.enabled"),
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		KeyPrefix:     v.GetString("s3.key_prefix"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	cfg.Company = CompanyConfig{
		Name:          v.GetString("company.name"),
		Address:       v.GetString("company.address"),
		Email:         v.GetString("company.email"),
		Phone:         v.GetString("company.phone"),
		Website:       v.GetString("company.website"),
		PANNumber:     v.GetString("company.pan_number"),
		AccountNumber: v.GetString("company.account_number"),
		AccountName:   v.GetString("company.account_name"),
		IFSCCode:      v.GetString("company.ifsc_code"),
		Branch:        v.GetString("company.branch"),
		UPIID:         v.GetString("company.upi_id"),
		Signatory:     v.GetString("company.signatory"),
		LogoPath:      v.GetString("company.logo_path"),
		SignaturePath: v.GetString("company.signature_path"),
	}

	return cfg, nil
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
