package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/rfberaldo/sqlz"
)

//go:embed sql-migrations
var sqlMigrationsFs embed.FS

/*
Migrate runs every embedded "commit" script in name order. Scripts are
written to be re-runnable, and "duplicate column" failures from
re-applied ALTERs are ignored.
*/
func Migrate(db *sqlz.DB) error {
	var (
		err   error
		dirs  []fs.DirEntry
		b     []byte
		names []string
	)

	if dirs, err = sqlMigrationsFs.ReadDir("sql-migrations"); err != nil {
		return fmt.Errorf("error reading migrations: %w", err)
	}

	for _, d := range dirs {
		if d.IsDir() {
			continue
		}

		if strings.HasPrefix(d.Name(), "commit") {
			names = append(names, d.Name())
		}
	}

	sort.Strings(names)

	for _, name := range names {
		if b, err = fs.ReadFile(sqlMigrationsFs, path.Join("sql-migrations", name)); err != nil {
			return fmt.Errorf("error reading migration '%s': %w", name, err)
		}

		if err = runSqlScript(db, b); err != nil {
			if !isIgnorableError(err) {
				return fmt.Errorf("error running migration '%s': %w", name, err)
			}
		}

		slog.Debug("applied migration", "name", name)
	}

	return nil
}

func runSqlScript(db *sqlz.DB, script []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	_, err := db.Exec(ctx, string(script))
	return err
}

func isIgnorableError(err error) bool {
	if strings.Contains(err.Error(), "duplicate column") {
		return true
	}

	return false
}
