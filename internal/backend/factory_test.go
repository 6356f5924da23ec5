package backend

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kharcha/internal/core"
)

func TestFactoryCreateMemoryBackend(t *testing.T) {
	factory := NewFactory(nil)

	result, err := factory.Create(context.Background(), Config{Type: MemoryBackend})
	require.NoError(t, err)
	require.NotNil(t, result.Backend)
	assert.Nil(t, result.Cleanup)

	expenses, err := result.Backend.Expenses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestFactoryCreateFileBackendPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "expenses.json")
	factory := NewFactory(nil)

	result, err := factory.Create(ctx, Config{Type: FileBackend, FilePath: path})
	require.NoError(t, err)

	_, err = result.Backend.Add(ctx, core.Expense{
		Amount:      core.Money{Paise: 500},
		Category:    core.CategoryOthers,
		Date:        core.NewDate(2025, 6, 1),
		PaymentMode: core.ModeCash,
	})
	require.NoError(t, err)

	// The slot file now holds the serialized collection.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var records []core.Expense
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, core.CategoryOthers, records[0].Category)
}

func TestFactoryCreateSQLiteBackend(t *testing.T) {
	ctx := context.Background()
	factory := NewFactory(nil)

	result, err := factory.Create(ctx, Config{
		Type:         SQLiteBackend,
		SQLiteDBPath: filepath.Join(t.TempDir(), "kharcha.db"),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Cleanup)
	defer func() { _ = result.Cleanup() }()

	expenses, err := result.Backend.Expenses(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestFactoryRejectsInvalidConfig(t *testing.T) {
	factory := NewFactory(nil)

	_, err := factory.Create(context.Background(), Config{Type: "redis"})
	assert.Error(t, err)

	_, err = factory.Create(context.Background(), Config{Type: FileBackend})
	assert.Error(t, err, "file backend requires a path")
}

func TestTypeIsValid(t *testing.T) {
	assert.True(t, FileBackend.IsValid())
	assert.True(t, SQLiteBackend.IsValid())
	assert.True(t, MemoryBackend.IsValid())
	assert.False(t, Type("postgres").IsValid())
}
