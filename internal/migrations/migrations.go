package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgconn"
)

//go:embed *.up.sql
var files embed.FS

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Apply runs every embedded *.up.sql script in lexical order.
// Scripts are idempotent, so Apply is safe to call on every start.
func Apply(ctx context.Context, db execer) ([]string, error) {
	names, err := fs.Glob(files, "*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("fs.Glob: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("files.ReadFile[%s]: %w", name, err)
		}

		// no arguments: pgx sends the script over the simple protocol, which allows many statements
		if _, err := db.Exec(ctx, string(script)); err != nil {
			return nil, fmt.Errorf("db.Exec[%s]: %w", name, err)
		}
	}

	return names, nil
}
