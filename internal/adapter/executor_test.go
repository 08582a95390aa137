package adapter

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-design-gallery/internal/config"
	"github.com/MKhiriev/go-design-gallery/internal/logger"
	"github.com/MKhiriev/go-design-gallery/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExecutor_UnknownDriver(t *testing.T) {
	_, _, err := NewExecutor(context.Background(), config.DB{Driver: "postgres"}, logger.Nop())

	require.Error(t, err)
}

func TestNewExecutor_D1(t *testing.T) {
	executor, release, err := NewExecutor(context.Background(), config.DB{
		Driver:     config.DriverD1,
		BaseURL:    "https://api.example.com/client/v4",
		AccountID:  "acc",
		DatabaseID: "db",
		APIToken:   "token",
	}, logger.Nop())

	require.NoError(t, err)
	defer release()
	assert.IsType(t, &D1Executor{}, executor)
}

func TestNewExecutor_SQLiteIsMigrated(t *testing.T) {
	executor, release, err := NewExecutor(context.Background(), config.DB{
		Driver: config.DriverSQLite,
		DSN:    "file:" + t.Name() + "?mode=memory&cache=shared&_foreign_keys=on",
	}, logger.Nop())
	require.NoError(t, err)
	defer release()

	result, err := executor.Query(context.Background(), "SELECT COUNT(*) AS n FROM users")

	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.IsType(t, &store.DB{}, executor)
}
