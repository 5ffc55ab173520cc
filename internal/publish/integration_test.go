package publish_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/unspsc/internal/config"
	"github.com/gyeh/unspsc/internal/db"
	"github.com/gyeh/unspsc/internal/logging"
	"github.com/gyeh/unspsc/internal/publish"
	"github.com/gyeh/unspsc/pkg/unspsc"
)

const (
	testPort     = 15433
	testDB       = "unspsctest"
	testUser     = "postgres"
	testPassword = "postgres"
)

var testDSN string

func TestMain(m *testing.M) {
	if os.Getenv("UNSPSC_PG_TESTS") == "" {
		os.Exit(m.Run())
	}

	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg := embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30 * time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}

	os.Exit(code)
}

// setupDB creates a connection pool on a clean ref schema with migrations applied.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testDSN == "" {
		t.Skip("set UNSPSC_PG_TESTS=1 to run embedded postgres tests")
	}
	ctx := context.Background()

	pool, err := db.NewPool(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	if _, err := pool.Exec(ctx, "DROP SCHEMA IF EXISTS ref CASCADE"); err != nil {
		t.Fatalf("drop schema ref: %v", err)
	}

	log := logging.Setup("text", "warn")
	if err := db.ApplyMigrations(ctx, pool, log); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	// Idempotent: a second pass must succeed.
	if err := db.ApplyMigrations(ctx, pool, log); err != nil {
		t.Fatalf("migrations (second pass): %v", err)
	}
	return pool
}

func countRows(t *testing.T, pool *pgxpool.Pool, query string, args ...any) int64 {
	t.Helper()
	var n int64
	if err := pool.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("count query %q: %v", query, err)
	}
	return n
}

func newConfig(t *testing.T, segments []string, activate bool) *config.Config {
	t.Helper()
	cfg := &config.Config{Segments: segments, Activate: activate}
	if err := cfg.LoadOptional(); err != nil {
		t.Fatalf("config: %v", err)
	}
	return cfg
}

func TestPublish_FullRegistry(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text", "warn")

	summary, err := publish.Run(ctx, pool, log, newConfig(t, nil, true))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.RowsCopied != int64(unspsc.Len()) {
		t.Errorf("expected %d rows copied, got %d", unspsc.Len(), summary.RowsCopied)
	}

	if n := countRows(t, pool, "SELECT count(*) FROM ref.unspsc_codes"); n != int64(unspsc.Len()) {
		t.Errorf("expected %d codes in table, got %d", unspsc.Len(), n)
	}
	if n := countRows(t, pool, "SELECT count(*) FROM ref.unspsc_codes WHERE restricted"); n == 0 {
		t.Error("expected restricted codes to be published")
	}
	if n := countRows(t, pool, "SELECT count(*) FROM ref.unspsc_releases WHERE is_active AND status = 'active'"); n != 1 {
		t.Errorf("expected 1 active release, got %d", n)
	}

	var desc string
	err = pool.QueryRow(ctx,
		"SELECT description FROM ref.unspsc_codes WHERE code = $1", "50201506").Scan(&desc)
	if err != nil {
		t.Fatalf("select description: %v", err)
	}
	if desc != "Fresh vegetables" {
		t.Errorf("unexpected description %q", desc)
	}
}

func TestPublish_IdempotentAndForce(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text", "warn")

	first, err := publish.Run(ctx, pool, log, newConfig(t, []string{"50"}, false))
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}

	second, err := publish.Run(ctx, pool, log, newConfig(t, []string{"50"}, false))
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if !second.AlreadyPublished {
		t.Error("expected second publish to be skipped")
	}
	if second.ReleaseID != first.ReleaseID {
		t.Errorf("expected same release id, got %s and %s", first.ReleaseID, second.ReleaseID)
	}

	cfg := newConfig(t, []string{"50"}, false)
	cfg.Force = true
	forced, err := publish.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("forced Run: %v", err)
	}
	if forced.AlreadyPublished || forced.ReleaseID != first.ReleaseID {
		t.Errorf("unexpected forced summary: %+v", forced)
	}
	want := int64(len(unspsc.CodesInSegment("50")))
	if n := countRows(t, pool, "SELECT count(*) FROM ref.unspsc_codes"); n != want {
		t.Errorf("expected %d codes after republish, got %d", want, n)
	}
}

func TestPublish_ForceActiveRelease(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text", "warn")

	first, err := publish.Run(ctx, pool, log, newConfig(t, []string{"50"}, true))
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}

	cfg := newConfig(t, []string{"50"}, false)
	cfg.Force = true
	forced, err := publish.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("forced Run: %v", err)
	}
	if forced.ReleaseID != first.ReleaseID {
		t.Errorf("expected release %s to be reused, got %s", first.ReleaseID, forced.ReleaseID)
	}
	if !forced.Activated {
		t.Error("expected forced republish of the active release to report it active")
	}

	var (
		status string
		active bool
	)
	err = pool.QueryRow(ctx,
		"SELECT status, is_active FROM ref.unspsc_releases WHERE release_id::text = $1", first.ReleaseID).
		Scan(&status, &active)
	if err != nil {
		t.Fatalf("select release: %v", err)
	}
	if status != publish.StatusActive || !active {
		t.Errorf("expected status=active is_active=true, got status=%s is_active=%v", status, active)
	}
	if n := countRows(t, pool, "SELECT count(*) FROM ref.unspsc_releases WHERE is_active AND status <> 'active'"); n != 0 {
		t.Errorf("expected no active release with a non-active status, got %d", n)
	}

	want := int64(len(unspsc.CodesInSegment("50")))
	if n := countRows(t, pool, "SELECT count(*) FROM ref.unspsc_codes WHERE release_id::text = $1", first.ReleaseID); n != want {
		t.Errorf("expected %d codes after forced republish, got %d", want, n)
	}
}

func TestPublish_FailedRepublishKeepsCodes(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text", "warn")

	first, err := publish.Run(ctx, pool, log, newConfig(t, []string{"50"}, true))
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}

	// NOT VALID skips existing rows, so only the republished COPY trips it.
	_, err = pool.Exec(ctx,
		"ALTER TABLE ref.unspsc_codes ADD CONSTRAINT reject_fresh_vegetables CHECK (code <> '50201506') NOT VALID")
	if err != nil {
		t.Fatalf("add constraint: %v", err)
	}

	cfg := newConfig(t, []string{"50"}, false)
	cfg.Force = true
	_, err = publish.Run(ctx, pool, log, cfg)
	var pe *publish.PipelineError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PipelineError, got %v", err)
	}
	if pe.Phase != publish.PhaseCopy {
		t.Errorf("expected copy phase, got %s", pe.Phase)
	}

	var (
		status string
		active bool
	)
	err = pool.QueryRow(ctx,
		"SELECT status, is_active FROM ref.unspsc_releases WHERE release_id::text = $1", first.ReleaseID).
		Scan(&status, &active)
	if err != nil {
		t.Fatalf("select release: %v", err)
	}
	if status != publish.StatusActive || !active {
		t.Errorf("expected release to stay active, got status=%s is_active=%v", status, active)
	}
	want := int64(len(unspsc.CodesInSegment("50")))
	if n := countRows(t, pool, "SELECT count(*) FROM ref.unspsc_codes WHERE release_id::text = $1", first.ReleaseID); n != want {
		t.Errorf("expected %d codes to survive the failed republish, got %d", want, n)
	}
}

func TestPublish_ActivationSwitches(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text", "warn")

	a, err := publish.Run(ctx, pool, log, newConfig(t, []string{"50"}, true))
	if err != nil {
		t.Fatalf("Run a: %v", err)
	}
	b, err := publish.Run(ctx, pool, log, newConfig(t, []string{"72"}, true))
	if err != nil {
		t.Fatalf("Run b: %v", err)
	}

	var active string
	err = pool.QueryRow(ctx,
		"SELECT release_id::text FROM ref.unspsc_releases WHERE is_active").Scan(&active)
	if err != nil {
		t.Fatalf("select active: %v", err)
	}
	if active != b.ReleaseID || active == a.ReleaseID {
		t.Errorf("expected release %s active, got %s", b.ReleaseID, active)
	}
}

func TestPublish_EmptySelectionFailsCheck(t *testing.T) {
	pool := setupDB(t)
	log := logging.Setup("text", "warn")

	cfg := newConfig(t, []string{"82"}, false)
	cfg.ExcludeRestricted = true

	_, err := publish.Run(context.Background(), pool, log, cfg)
	var pe *publish.PipelineError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PipelineError, got %v", err)
	}
	if pe.Phase != publish.PhaseCheck {
		t.Errorf("expected check phase, got %s", pe.Phase)
	}
}
