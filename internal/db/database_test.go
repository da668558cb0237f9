package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/config"
)

func TestDialector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.DBConfig
		dialect string
		wantErr bool
	}{
		{name: "default pgx", cfg: config.DBConfig{URL: "postgres://u:p@h:5432/db"}, dialect: "postgres"},
		{name: "lib/pq", cfg: config.DBConfig{Driver: config.DriverPQ, URL: "postgres://u:p@h:5432/db"}, dialect: "postgres"},
		{name: "sqlite", cfg: config.DBConfig{Driver: config.DriverSQLite, Name: "shop.db"}, dialect: "sqlite"},
		{name: "unknown driver", cfg: config.DBConfig{Driver: "mysql", URL: "x"}, wantErr: true},
		{name: "empty sqlite path", cfg: config.DBConfig{Driver: config.DriverSQLite}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := dialector(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dialect, d.Name())
		})
	}
}

func TestOpen_SQLite(t *testing.T) {
	cfg := config.DBConfig{Driver: config.DriverSQLite, Name: filepath.Join(t.TempDir(), "shop.db")}

	gdb, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })

	var one int
	require.NoError(t, gdb.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	assert.Equal(t, 5, sqlDB.Stats().MaxOpenConnections)
}
