package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalize(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantErr  bool
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "Builds DSN and resolves timezone",
			cfg: Config{
				App: App{Timezone: "America/Sao_Paulo"},
				Database: Database{
					Driver:   "postgres",
					User:     "app",
					Password: "secret",
					URL:      "db:5432/budget",
					SSLMode:  "disable",
				},
				SpendRetention: SpendRetention{DaysToKeep: 90},
				BudgetAlerts:   BudgetAlerts{ThresholdPercent: 90},
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "postgres://app:secret@db:5432/budget?sslmode=disable", cfg.Database.DSN)
				assert.Equal(t, "America/Sao_Paulo", cfg.App.Location.String())
				assert.Equal(t, time.Minute, cfg.DaypartingEnforcement.Interval)
			},
		},
		{
			name: "Rejects unknown timezone",
			cfg: Config{
				App:            App{Timezone: "Mars/Olympus"},
				SpendRetention: SpendRetention{DaysToKeep: 90},
				BudgetAlerts:   BudgetAlerts{ThresholdPercent: 90},
			},
			wantErr: true,
		},
		{
			name: "Rejects non-positive retention",
			cfg: Config{
				App:          App{Timezone: "UTC"},
				BudgetAlerts: BudgetAlerts{ThresholdPercent: 90},
			},
			wantErr: true,
		},
		{
			name: "Rejects threshold above 100",
			cfg: Config{
				App:            App{Timezone: "UTC"},
				SpendRetention: SpendRetention{DaysToKeep: 30},
				BudgetAlerts:   BudgetAlerts{ThresholdPercent: 120},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.finalize()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, &cfg)
		})
	}
}

func TestApp_Now(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	app := App{Location: loc}
	assert.Equal(t, loc, app.Now().Location())
	assert.Equal(t, time.UTC, App{}.Now().Location())
}

func TestNewConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Europe/Berlin")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://ops.example.com,https://admin.example.com")
	t.Setenv("SPEND_RETENTION_DAYS", "30")
	t.Setenv("DAYPARTING_ENFORCEMENT_INTERVAL", "30s")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "Europe/Berlin", cfg.App.Location.String())
	assert.Equal(t, []string{"https://ops.example.com", "https://admin.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 30, cfg.SpendRetention.DaysToKeep)
	assert.Equal(t, 30*time.Second, cfg.DaypartingEnforcement.Interval)
	assert.Equal(t, 90, cfg.BudgetAlerts.ThresholdPercent)
}
