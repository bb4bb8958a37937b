package services

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/adampresley/residencias/pkg/migrations"
	_ "github.com/glebarez/sqlite"
	"github.com/rfberaldo/sqlz"
	"github.com/rfberaldo/sqlz/binds"
	"github.com/stretchr/testify/require"
)

var registerBinds sync.Once

func newTestDB(t *testing.T) *sqlz.DB {
	t.Helper()

	registerBinds.Do(func() {
		binds.Register("sqlite", binds.BindByDriver("sqlite3"))
	})

	db, err := sqlz.Connect("sqlite", "file:"+filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	require.NoError(t, migrations.Migrate(db))
	return db
}
