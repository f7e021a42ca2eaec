package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/vfg2006/budget-guard-api/infrastructure/database/migrations"
	pgconn "github.com/vfg2006/budget-guard-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-guard-api/internal/config"
)

// TestDatabase is a migrated PostgreSQL container owned by one test.
type TestDatabase struct {
	Container *postgres.PostgresContainer
	Conn      *pgconn.Connection
	DSN       string
}

// SetupTestDatabase starts a container, applies the migrations and opens a
// connection. Everything is torn down through t.Cleanup.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("budget_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		postgres.BasicWaitStrategies(),
		testcontainers.CustomizeRequest(testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Labels: map[string]string{
					"test":      "budget-guard-repository",
					"test-name": t.Name(),
					"timestamp": time.Now().Format("20060102-150405"),
				},
			},
		}),
	)
	require.NoError(t, err)

	testDB := &TestDatabase{Container: container}
	t.Cleanup(func() {
		testDB.cleanup(t)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	testDB.DSN = dsn

	require.NoError(t, migrations.Up(dsn))

	conn, err := pgconn.NewConnection(ctx, config.Database{
		DSN:          dsn,
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	})
	require.NoError(t, err)
	testDB.Conn = conn

	return testDB
}

func (td *TestDatabase) cleanup(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Logf("Panic during container cleanup (recovered): %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if td.Conn != nil {
		_ = td.Conn.Close()
	}

	if td.Container != nil {
		if err := td.Container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate test container: %v", err)
		}
	}
}
