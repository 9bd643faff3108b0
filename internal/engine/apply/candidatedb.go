package apply

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quantipeak/go_apply/internal/engine/resume"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Package-level singleton, set from main.go.
var candidateDB *CandidateDB

// SetCandidateDB sets the package-level candidate DB instance.
func SetCandidateDB(db *CandidateDB) { candidateDB = db }

// GetCandidateDB returns the package-level candidate DB instance (may be nil).
func GetCandidateDB() *CandidateDB { return candidateDB }

// CandidateDB holds the pgx connection pool for candidate storage.
type CandidateDB struct {
	pool *pgxpool.Pool
}

// CandidateRecord is one stored candidate: the parsed profile plus store
// metadata. Upserts are keyed by email, so re-uploading a resume updates the
// existing record instead of duplicating the candidate.
type CandidateRecord struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	Name       string          `json:"name"`
	Profile    *resume.Profile `json:"profile"`
	SourceFile string          `json:"source_file,omitempty"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

// ErrNoEmail is returned when a profile cannot be persisted because nothing
// email-shaped was extracted; the upsert key would be empty.
var ErrNoEmail = errors.New("candidate: profile has no email, cannot persist")

// ConnectCandidateDB creates a pgx pool and runs schema migrations.
func ConnectCandidateDB(ctx context.Context, databaseURL string) (*CandidateDB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db := &CandidateDB{pool: pool}
	if err := db.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("candidate postgres connected", slog.String("addr", config.ConnConfig.Host))
	return db, nil
}

func (db *CandidateDB) Close() {
	db.pool.Close()
}

func (db *CandidateDB) runMigrations(ctx context.Context) error {
	entries, err := schemaFS.ReadDir("schema")
	if err != nil {
		return fmt.Errorf("read schema dir: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		data, err := schemaFS.ReadFile("schema/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		if _, err := db.pool.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("execute %s: %w", entry.Name(), err)
		}
		slog.Info("migration applied", slog.String("file", entry.Name()))
	}
	return nil
}

// UpsertCandidate inserts or updates a candidate keyed by the profile's
// email. The stored profile is replaced wholesale on update; profiles are
// immutable after assembly, so there is nothing to merge.
func (db *CandidateDB) UpsertCandidate(ctx context.Context, p *resume.Profile, sourceFile string) (*CandidateRecord, error) {
	email := strings.ToLower(strings.TrimSpace(p.Contact.Email))
	if email == "" {
		return nil, ErrNoEmail
	}

	profileJSON, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("candidate: marshal profile: %w", err)
	}

	rec := &CandidateRecord{Email: email, Name: p.Name, Profile: p, SourceFile: sourceFile}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO candidates (id, email, name, profile, source_file)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (email) DO UPDATE
		 SET name = EXCLUDED.name, profile = EXCLUDED.profile,
		     source_file = EXCLUDED.source_file, updated_at = now()
		 RETURNING id, created_at::text, updated_at::text`,
		uuid.NewString(), email, p.Name, profileJSON, sourceFile,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("candidate: upsert: %w", err)
	}
	return rec, nil
}

// GetCandidate returns a candidate by ID or email. IDs are UUIDs, so
// anything containing '@' is treated as an email lookup.
func (db *CandidateDB) GetCandidate(ctx context.Context, idOrEmail string) (*CandidateRecord, error) {
	column := "id"
	key := strings.TrimSpace(idOrEmail)
	if strings.Contains(key, "@") {
		column = "email"
		key = strings.ToLower(key)
	}

	var rec CandidateRecord
	var profileJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, email, name, profile, COALESCE(source_file,''), created_at::text, updated_at::text
		 FROM candidates WHERE `+column+` = $1`, key,
	).Scan(&rec.ID, &rec.Email, &rec.Name, &profileJSON, &rec.SourceFile, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("candidate: get %s: %w", idOrEmail, err)
	}
	if err := json.Unmarshal(profileJSON, &rec.Profile); err != nil {
		return nil, fmt.Errorf("candidate: decode profile: %w", err)
	}
	return &rec, nil
}

// ListCandidates returns candidates ordered by most recently updated.
// Profiles are included; the list is bounded by limit (default 50, max 200).
func (db *CandidateDB) ListCandidates(ctx context.Context, limit int) ([]CandidateRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, email, name, profile, COALESCE(source_file,''), created_at::text, updated_at::text
		 FROM candidates ORDER BY updated_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("candidate: list: %w", err)
	}
	defer rows.Close()

	var out []CandidateRecord
	for rows.Next() {
		var rec CandidateRecord
		var profileJSON []byte
		if err := rows.Scan(&rec.ID, &rec.Email, &rec.Name, &profileJSON,
			&rec.SourceFile, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(profileJSON, &rec.Profile); err != nil {
			slog.Warn("candidate: corrupt profile skipped", slog.String("id", rec.ID), slog.Any("error", err))
			continue
		}
		out = append(out, rec)
	}
	if out == nil {
		out = []CandidateRecord{}
	}
	return out, rows.Err()
}
