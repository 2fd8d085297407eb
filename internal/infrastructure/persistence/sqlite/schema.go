package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/bnema/themesync/internal/logging"
)

//go:embed migrations/*.sql
var schemaFiles embed.FS

// migrate brings the preference schema to the latest version. The provider
// is discarded afterwards without closing db.
func migrate(ctx context.Context, db *sql.DB) error {
	files, err := fs.Sub(schemaFiles, "migrations")
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, files)
	if err != nil {
		return fmt.Errorf("schema provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	log := logging.FromContext(ctx)
	for _, r := range results {
		log.Info().
			Int64("version", r.Source.Version).
			Dur("took", r.Duration).
			Msg("schema migration applied")
	}
	if len(results) == 0 {
		v, err := provider.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("schema version: %w", err)
		}
		log.Debug().Int64("version", v).Msg("schema current")
	}
	return nil
}
