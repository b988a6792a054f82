package db

import (
	"context"
	"embed"
	"io/fs"
	"sort"
	"strings"

	"autofin/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.up.sql
var migrationFS embed.FS

// Migrate applies all *.up.sql files in lexical order. Statements are
// idempotent (IF NOT EXISTS), so reapplying on boot is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	entries, err := fs.ReadDir(migrationFS, "migrations")
	if err != nil {
		return errs.Wrap(err, "failed to read migrations dir")
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".up.sql") {
			continue
		}

		contents, err := fs.ReadFile(migrationFS, "migrations/"+name)
		if err != nil {
			return errs.Wrap(err, "failed to read migration "+name)
		}
		if _, err := pool.Exec(ctx, string(contents)); err != nil {
			return errs.Wrap(err, "failed to apply migration "+name)
		}
	}
	return nil
}
