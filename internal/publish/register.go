package publish

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	embedsql "github.com/gyeh/unspsc/internal/sql"
)

// Release statuses stored in ref.unspsc_releases.status.
const (
	StatusPending   = "pending"
	StatusCopying   = "copying"
	StatusPublished = "published"
	StatusActive    = "active"
	StatusFailed    = "failed"
)

// Release identifies the ref.unspsc_releases row for a digest.
type Release struct {
	ReleaseID uuid.UUID
	// AlreadyPublished is true when a release with the same digest is already
	// published or active and force is off.
	AlreadyPublished bool
	// Republish is true when force replaces the codes of a published or
	// active release. Its row stays readable until the copy commits.
	Republish bool
	// WasActive is true when the release was the active one at register time.
	WasActive bool
}

// execer is satisfied by *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Register inserts a release row for chk.Digest, or reuses the existing one.
// Existing codes are not touched here; Copy replaces them inside its
// transaction.
func Register(ctx context.Context, pool *pgxpool.Pool, chk *CheckResult, force bool) (*Release, error) {
	var id uuid.UUID
	err := pool.QueryRow(ctx, embedsql.RegisterRelease, uuid.New(), chk.Digest, len(chk.Entries)).Scan(&id)
	if err == nil {
		return &Release{ReleaseID: id}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("register release: %w", err)
	}

	// ON CONFLICT DO NOTHING returned no rows: the digest is already known.
	var (
		status string
		active bool
	)
	if err := pool.QueryRow(ctx, embedsql.LookupRelease, chk.Digest).Scan(&id, &status, &active); err != nil {
		return nil, fmt.Errorf("lookup existing release: %w", err)
	}

	published := active || status == StatusPublished || status == StatusActive
	if published && !force {
		return &Release{ReleaseID: id, AlreadyPublished: true, WasActive: active}, nil
	}
	return &Release{ReleaseID: id, Republish: published, WasActive: active}, nil
}

// UpdateStatus sets the release status. An active release keeps 'active'.
func UpdateStatus(ctx context.Context, db execer, releaseID uuid.UUID, status string) error {
	_, err := db.Exec(ctx, embedsql.UpdateReleaseStatus, releaseID, status)
	return err
}
