package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	SMTP  SMTPConfig
	Minio MinioConfig
	JWT   JWTConfig
	Links LinksConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// JWTConfig carries one secret per token purpose. A token signed for one
// purpose must never verify against another purpose's secret.
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration

	PasswordSetupSecret string
	PasswordSetupExpiry time.Duration

	ClaimantApprovalSecret string

	OrgInvitationSecret string
	OrgInvitationExpiry time.Duration

	InfoRequestSecret string
	InfoRequestExpiry time.Duration
}

type LinksConfig struct {
	PortalBaseURL  string
	BookingBaseURL string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			Username: viper.GetString("SMTP_USERNAME"),
			Password: viper.GetString("SMTP_PASSWORD"),
			From:     viper.GetString("SMTP_FROM"),
		},
		Minio: MinioConfig{
			Endpoint:  viper.GetString("MINIO_ENDPOINT"),
			AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey: viper.GetString("MINIO_SECRET_KEY"),
			Bucket:    viper.GetString("MINIO_BUCKET"),
			UseSSL:    viper.GetBool("MINIO_USE_SSL"),
		},
		JWT: JWTConfig{
			Secret:                 viper.GetString("JWT_SECRET"),
			AccessExpiry:           durationOrDefault("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry:          durationOrDefault("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
			PasswordSetupSecret:    viper.GetString("JWT_PASSWORD_SETUP_SECRET"),
			PasswordSetupExpiry:    durationOrDefault("JWT_PASSWORD_SETUP_EXPIRY", 72*time.Hour),
			ClaimantApprovalSecret: viper.GetString("JWT_CLAIMANT_APPROVAL_SECRET"),
			OrgInvitationSecret:    viper.GetString("JWT_ORG_INVITATION_SECRET"),
			OrgInvitationExpiry:    durationOrDefault("JWT_ORG_INVITATION_EXPIRY", 7*24*time.Hour),
			InfoRequestSecret:      viper.GetString("JWT_INFO_REQUEST_SECRET"),
			InfoRequestExpiry:      durationOrDefault("JWT_INFO_REQUEST_EXPIRY", 7*24*time.Hour),
		},
		Links: LinksConfig{
			PortalBaseURL:  viper.GetString("PORTAL_BASE_URL"),
			BookingBaseURL: viper.GetString("BOOKING_BASE_URL"),
		},
	}

	return config, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}
