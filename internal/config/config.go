package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                   App                   `mapstructure:",squash"`
	Server                Server                `mapstructure:",squash"`
	Database              Database              `mapstructure:",squash"`
	Auth                  Auth                  `mapstructure:",squash"`
	DaypartingEnforcement DaypartingEnforcement `mapstructure:",squash"`
	StatusEnforcement     StatusEnforcement     `mapstructure:",squash"`
	BudgetReset           BudgetReset           `mapstructure:",squash"`
	SpendRetention        SpendRetention        `mapstructure:",squash"`
	BudgetAlerts          BudgetAlerts          `mapstructure:",squash"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
}

// Now returns the current instant in the operating timezone.
func (a App) Now() time.Time {
	if a.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(a.Location)
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	SSLMode       string `mapstructure:"database_sslmode"`
	MaxOpenConns  int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns  int    `mapstructure:"database_max_idle_conns"`
	RunMigrations bool   `mapstructure:"database_run_migrations"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type DaypartingEnforcement struct {
	Interval time.Duration `mapstructure:"dayparting_enforcement_interval"`
	Enabled  bool          `mapstructure:"dayparting_enforcement_enabled"`
}

type StatusEnforcement struct {
	CronSchedule string `mapstructure:"status_enforcement_cron"`
	Enabled      bool   `mapstructure:"status_enforcement_enabled"`
}

type BudgetReset struct {
	DailyCron   string `mapstructure:"budget_reset_daily_cron"`
	MonthlyCron string `mapstructure:"budget_reset_monthly_cron"`
	Enabled     bool   `mapstructure:"budget_reset_enabled"`
}

type SpendRetention struct {
	CronSchedule string `mapstructure:"spend_retention_cron"`
	DaysToKeep   int    `mapstructure:"spend_retention_days"`
	Enabled      bool   `mapstructure:"spend_retention_enabled"`
}

type BudgetAlerts struct {
	CronSchedule     string `mapstructure:"budget_alerts_cron"`
	ThresholdPercent int    `mapstructure:"budget_alerts_threshold_percent"`
	Enabled          bool   `mapstructure:"budget_alerts_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_TIMEZONE", "UTC")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/budget")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_RUN_MIGRATIONS", true)

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("DAYPARTING_ENFORCEMENT_INTERVAL", "1m")
	viper.SetDefault("DAYPARTING_ENFORCEMENT_ENABLED", true)

	// Full status pass runs on demand unless a cron is enabled
	viper.SetDefault("STATUS_ENFORCEMENT_CRON", "*/5 * * * *")
	viper.SetDefault("STATUS_ENFORCEMENT_ENABLED", false)

	viper.SetDefault("BUDGET_RESET_DAILY_CRON", "0 0 * * *")
	viper.SetDefault("BUDGET_RESET_MONTHLY_CRON", "0 0 1 * *")
	viper.SetDefault("BUDGET_RESET_ENABLED", true)

	viper.SetDefault("SPEND_RETENTION_CRON", "30 0 * * *")
	viper.SetDefault("SPEND_RETENTION_DAYS", 90)
	viper.SetDefault("SPEND_RETENTION_ENABLED", true)

	viper.SetDefault("BUDGET_ALERTS_CRON", "*/5 * * * *")
	viper.SetDefault("BUDGET_ALERTS_THRESHOLD_PERCENT", 90)
	viper.SetDefault("BUDGET_ALERTS_ENABLED", true)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Using environment loaded by godotenv (viper could not read .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) finalize() error {
	location, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	c.App.Location = location

	if c.DaypartingEnforcement.Interval <= 0 {
		c.DaypartingEnforcement.Interval = time.Minute
	}
	if c.SpendRetention.DaysToKeep <= 0 {
		return fmt.Errorf("SPEND_RETENTION_DAYS must be positive, got %d", c.SpendRetention.DaysToKeep)
	}
	if c.BudgetAlerts.ThresholdPercent <= 0 || c.BudgetAlerts.ThresholdPercent > 100 {
		return fmt.Errorf("BUDGET_ALERTS_THRESHOLD_PERCENT must be within 1..100, got %d", c.BudgetAlerts.ThresholdPercent)
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
		c.Database.SSLMode,
	)

	return nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Loaded .env from: ", location)
			return
		}
	}

	logrus.Debug("No .env file found, relying on process environment")
}
