package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type OTPConfig struct {
	TTL          string `yaml:"ttl"`
	ResendWindow string `yaml:"resend_window"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	OTP       OTPConfig       `yaml:"otp"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Casbin    CasbinConfig    `yaml:"casbin"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type Config struct {
	Port             string
	GinMode          string
	DSN              string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	JWTSecret        string
	JWTIssuer        string
	TokenTTL         time.Duration
	OTPTTL           time.Duration
	OTPResendWindow  time.Duration
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	SMTPFrom         string
	CasbinModelPath  string
	RateLimitPerSec  float64
	RateLimitBurst   int
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(configFile.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	resWnd, err := time.ParseDuration(configFile.OTP.ResendWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP resend window: %w", err)
	}

	// A missing app.port would otherwise become "0" and bind an ephemeral port.
	port := env("PORT", fmt.Sprintf("%d", configFile.App.Port))
	if port == "" || port == "0" {
		return nil, fmt.Errorf("app port is not configured")
	}

	return &Config{
		Port:            port,
		GinMode:         configFile.App.GinMode,
		DSN:             env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:       env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:   env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:         configFile.Redis.DB,
		JWTSecret:       env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:       configFile.JWT.Issuer,
		TokenTTL:        tokenTTL,
		OTPTTL:          otpTTL,
		OTPResendWindow: resWnd,
		SMTPHost:        env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:        configFile.SMTP.Port,
		SMTPUsername:    env("SMTP_USER", configFile.SMTP.Username),
		SMTPPassword:    env("SMTP_PASS", configFile.SMTP.Password),
		SMTPFrom:        configFile.SMTP.From,
		CasbinModelPath: configFile.Casbin.ModelPath,
		RateLimitPerSec: configFile.RateLimit.RequestsPerSecond,
		RateLimitBurst:  configFile.RateLimit.Burst,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
