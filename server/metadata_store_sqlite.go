package server

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/acearchive/files/types"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

//go:embed migrations
var migrationsFS embed.FS

// SQLiteMetadataStore implements MetadataStore on a relational schema of
// artifacts, versions, files and their aliases
type SQLiteMetadataStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteMetadataStore opens the database. When migrate is set the schema
// is created if missing.
func NewSQLiteMetadataStore(ctx context.Context, dsn string, migrate bool, logger *zap.Logger) (*SQLiteMetadataStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// Every connection to an in-memory database is a separate database.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if migrate {
		if err := initSchema(ctx, db, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &SQLiteMetadataStore{db: db, logger: logger}, nil
}

// initSchema applies the embedded migrations in lexicographical order
func initSchema(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	return fs.WalkDir(migrationsFS, "migrations", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := migrationsFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading migration %s: %w", path, err)
		}

		logger.Debug("running migration", zap.String("path", path))
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("error running migration %s: %w", path, err)
		}
		return nil
	})
}

// LookupFile finds the file in the latest version of the artifact, matching
// the artifact by slug, slug alias or ID and the file by filename or alias
func (s *SQLiteMetadataStore) LookupFile(ctx context.Context, locator types.ArtifactFileLocator, filenames []string) (types.ArtifactFileMetadata, bool, error) {
	if len(filenames) == 0 {
		return types.ArtifactFileMetadata{}, false, nil
	}

	artifactClause := `(artifacts.slug = ? OR EXISTS (
				SELECT 1 FROM artifact_aliases
				WHERE artifact_aliases.artifact = artifacts.id AND artifact_aliases.slug = ?
			))`
	args := []any{locator.Slug, locator.Slug}
	if locator.ByID() {
		artifactClause = `artifacts.artifact_id = ?`
		args = []any{locator.ID}
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(filenames)), ", ")
	for range 2 {
		for _, filename := range filenames {
			args = append(args, filename)
		}
	}

	query := fmt.Sprintf(`
		SELECT
			files.multihash,
			artifacts.artifact_id,
			artifacts.slug,
			files.filename,
			COALESCE(files.media_type, '')
		FROM
			artifacts
		JOIN
			artifact_versions ON artifact_versions.artifact = artifacts.id
			AND artifact_versions.version = (
				SELECT MAX(version) FROM artifact_versions AS latest
				WHERE latest.artifact = artifacts.id
			)
		JOIN
			files ON files.artifact_version = artifact_versions.id
		WHERE
			%s
			AND (
				files.filename IN (%s)
				OR EXISTS (
					SELECT 1 FROM file_aliases
					WHERE file_aliases.file = files.id AND file_aliases.filename IN (%s)
				)
			)
		ORDER BY files.id
		LIMIT 1`, artifactClause, placeholders, placeholders)

	var (
		metadata  types.ArtifactFileMetadata
		multihash string
	)
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&multihash,
		&metadata.ArtifactID,
		&metadata.CanonicalSlug,
		&metadata.CanonicalFilename,
		&metadata.MediaType,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return types.ArtifactFileMetadata{}, false, nil
	}
	if err != nil {
		return types.ArtifactFileMetadata{}, false, fmt.Errorf("query artifact file %s: %w", locator, err)
	}

	metadata.Multihash = types.FileMultihash(multihash)
	return metadata, true, nil
}

// PutArtifact records a new version of an artifact. A zero Version is
// assigned the next version number.
func (s *SQLiteMetadataStore) PutArtifact(ctx context.Context, artifact ArtifactRecord) error {
	if err := artifact.Validate(); err != nil {
		return err
	}

	return withTransaction(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO artifacts (artifact_id, slug) VALUES (?, ?)
			ON CONFLICT (artifact_id) DO UPDATE SET slug = excluded.slug`,
			artifact.ArtifactID, artifact.Slug); err != nil {
			return fmt.Errorf("upsert artifact: %w", err)
		}

		var artifactRowID int64
		if err := tx.QueryRowContext(ctx,
			`SELECT id FROM artifacts WHERE artifact_id = ?`, artifact.ArtifactID).Scan(&artifactRowID); err != nil {
			return fmt.Errorf("select artifact: %w", err)
		}

		for _, alias := range artifact.SlugAliases {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO artifact_aliases (artifact, slug) VALUES (?, ?)
				ON CONFLICT (slug) DO UPDATE SET artifact = excluded.artifact`,
				artifactRowID, alias); err != nil {
				return fmt.Errorf("insert slug alias %s: %w", alias, err)
			}
		}

		version := artifact.Version
		if version == 0 {
			if err := tx.QueryRowContext(ctx,
				`SELECT COALESCE(MAX(version), 0) + 1 FROM artifact_versions WHERE artifact = ?`,
				artifactRowID).Scan(&version); err != nil {
				return fmt.Errorf("select next version: %w", err)
			}
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO artifact_versions (artifact, version) VALUES (?, ?)`, artifactRowID, version)
		if err != nil {
			return fmt.Errorf("insert artifact version %d: %w", version, err)
		}
		versionRowID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("artifact version id: %w", err)
		}

		for _, file := range artifact.Files {
			res, err := tx.ExecContext(ctx,
				`INSERT INTO files (artifact_version, filename, media_type, multihash) VALUES (?, ?, ?, ?)`,
				versionRowID, types.UglifyFilename(file.Filename), file.MediaType, file.Multihash.String())
			if err != nil {
				return fmt.Errorf("insert file %s: %w", file.Filename, err)
			}
			fileRowID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("file id: %w", err)
			}

			for _, alias := range file.Aliases {
				if _, err := tx.ExecContext(ctx,
					`INSERT OR IGNORE INTO file_aliases (file, filename) VALUES (?, ?)`,
					fileRowID, alias); err != nil {
					return fmt.Errorf("insert file alias %s: %w", alias, err)
				}
			}
		}

		s.logger.Debug("artifact version recorded",
			zap.String("artifact_id", artifact.ArtifactID),
			zap.String("slug", artifact.Slug),
			zap.Int("version", version),
			zap.Int("files", len(artifact.Files)))
		return nil
	})
}

// Close closes the database
func (s *SQLiteMetadataStore) Close() error {
	return s.db.Close()
}

// withTransaction runs fn within a database transaction
func withTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return fmt.Errorf("error executing transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
