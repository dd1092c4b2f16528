// test/helpers/test_helpers.go
package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/brewline/stockroom-be/internal/adapters/db"
	"github.com/brewline/stockroom-be/internal/core/domain"
	"github.com/brewline/stockroom-be/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_stockroom",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_stockroom",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		StatementCacheMode: "describe",
		EnableQueryLogging: testing.Verbose(),
	}

	// Wait for database to be ready
	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		SourcePath: "../../migrations",
		TableName:  "schema_migrations",
		SchemaName: "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// SetupMockDB creates a mock database for unit testing
func SetupMockDB(t *testing.T) (sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock DB")

	t.Cleanup(func() {
		db.Close()
	})

	return mock, db
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_stockroom",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		FileProcessing: config.FileProcessingConfig{
			ExcelMaxSizeMB:    100,
			ProcessingTimeout: 5 * time.Minute,
			TempDir:           "/tmp",
		},
		Stock: config.StockConfig{
			ExpirySweepInterval:  5 * time.Minute,
			ReservationHoldTTL:   2 * time.Hour,
			HistoryRetention:     180 * 24 * time.Hour,
			AvailabilityCacheTTL: 30 * time.Second,
		},
		Security: config.SecurityConfig{
			JWTSecret:         "test-secret",
			JWTExpiration:     24 * time.Hour,
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestWarehouseBatch creates a warehouse batch for testing
func CreateTestWarehouseBatch(overrides ...func(*domain.WarehouseBatch)) *domain.WarehouseBatch {
	shelfLife := 48.0
	batch := &domain.WarehouseBatch{
		ID:                1,
		ProductName:       "Whole Milk",
		CategoryType:      "Dairy",
		SubCategory:       "Milk",
		Quantity:          decimal.NewFromInt(24),
		Unit:              "liter",
		PreparationMethod: domain.DefaultPreparationMethod,
		ShelfLifeValue:    &shelfLife,
		ShelfLifeUnit:     "hours",
		CreatedAt:         time.Now(),
	}

	for _, override := range overrides {
		override(batch)
	}

	return batch
}

// CreateTestKitchenBatch creates a kitchen batch for testing
func CreateTestKitchenBatch(overrides ...func(*domain.KitchenBatch)) *domain.KitchenBatch {
	sourceID := int64(1)
	shelfLife := 48.0
	transferredAt := time.Now().Add(-time.Hour)
	expiry := transferredAt.Add(48 * time.Hour)

	batch := &domain.KitchenBatch{
		ID:                uuid.New(),
		WarehouseItemID:   &sourceID,
		ProductName:       "Whole Milk",
		CategoryType:      "Dairy",
		SubCategory:       "Milk",
		BatchNumber:       "BATCH-100001",
		PreparationMethod: domain.DefaultPreparationMethod,
		OriginalQuantity:  decimal.NewFromInt(10),
		CurrentQuantity:   decimal.NewFromInt(10),
		ReservedQuantity:  decimal.Zero,
		Unit:              "liter",
		ShelfLifeValue:    &shelfLife,
		ShelfLifeUnit:     "hours",
		CalculatedExpiry:  &expiry,
		ExpirySource:      domain.ExpiryComputed,
		Status:            domain.BatchAvailable,
		TransferredAt:     transferredAt,
		CreatedAt:         transferredAt,
		UpdatedAt:         transferredAt,
	}

	for _, override := range overrides {
		override(batch)
	}

	return batch
}

// CreateTestRecipeLine creates a recipe line for testing
func CreateTestRecipeLine(overrides ...func(*domain.RecipeLine)) *domain.RecipeLine {
	line := &domain.RecipeLine{
		ID:               1,
		VariantID:        101,
		IngredientID:     1,
		RequiredQuantity: decimal.RequireFromString("0.25"),
		Unit:             "liter",
	}

	for _, override := range overrides {
		override(line)
	}

	return line
}

// CompareKitchenBatches compares the stable fields of two kitchen batches
func CompareKitchenBatches(t *testing.T, expected, actual *domain.KitchenBatch) {
	t.Helper()

	require.Equal(t, expected.BatchNumber, actual.BatchNumber)
	require.Equal(t, expected.ProductName, actual.ProductName)
	require.Equal(t, expected.CategoryType, actual.CategoryType)
	require.Equal(t, expected.Unit, actual.Unit)
	require.Equal(t, expected.Status, actual.Status)
	require.True(t, expected.OriginalQuantity.Equal(actual.OriginalQuantity))
	require.True(t, expected.CurrentQuantity.Equal(actual.CurrentQuantity))
	require.True(t, expected.ReservedQuantity.Equal(actual.ReservedQuantity))
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"order_reservations",
		"recipe_lines",
		"transfer_history",
		"kitchen_stock",
		"warehouse_inventory",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

// SeedWarehouseStock seeds the database with warehouse batches
func SeedWarehouseStock(t *testing.T, db *pgxpool.Pool, batches []domain.WarehouseBatch) []int64 {
	t.Helper()

	ctx := context.Background()
	ids := make([]int64, 0, len(batches))

	for _, batch := range batches {
		query := `
			INSERT INTO warehouse_inventory (
				product_name, category_type, sub_category, quantity, unit,
				preparation_method, has_expiry, expiry_date, serving_size,
				shelf_life_value, shelf_life_unit, notes
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id
		`

		var id int64
		err := db.QueryRow(ctx, query,
			batch.ProductName, batch.CategoryType, batch.SubCategory,
			batch.Quantity, batch.Unit, batch.PreparationMethod,
			batch.HasExpiry, batch.ExpiryDate, batch.ServingSize,
			batch.ShelfLifeValue, batch.ShelfLifeUnit, batch.Notes,
		).Scan(&id)
		require.NoError(t, err, "Failed to seed warehouse stock")
		ids = append(ids, id)
	}

	return ids
}

// CreateTempFile creates a temporary file for testing
func CreateTempFile(t *testing.T, content []byte, extension string) string {
	t.Helper()

	file, err := os.CreateTemp("", fmt.Sprintf("test-*%s", extension))
	require.NoError(t, err, "Failed to create temp file")

	_, err = file.Write(content)
	require.NoError(t, err, "Failed to write to temp file")

	file.Close()

	t.Cleanup(func() {
		os.Remove(file.Name())
	})

	return file.Name()
}
