package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"horse.fit/translategw/internal/config"
)

func TestResolveGormLogLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		level       string
		environment string
		want        logger.LogLevel
	}{
		{level: "debug", want: logger.Info},
		{level: "", want: logger.Warn},
		{level: "INFO", want: logger.Warn},
		{level: "error", want: logger.Error},
		{level: "silent", want: logger.Silent},
		{level: "verbose", environment: "local", want: logger.Warn},
		{level: "verbose", environment: "production", want: logger.Error},
	}
	for _, tc := range cases {
		if got := resolveGormLogLevel(tc.level, tc.environment); got != tc.want {
			t.Fatalf("level=%q env=%q: expected %v, got %v", tc.level, tc.environment, tc.want, got)
		}
	}
}

func TestNewPoolRequiresDatabaseURL(t *testing.T) {
	t.Parallel()

	if _, err := NewPool(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := NewPool(context.Background(), &config.Config{DatabaseURL: "  "}); err == nil {
		t.Fatalf("expected error for blank DATABASE_URL")
	}
}

func TestNilPool(t *testing.T) {
	t.Parallel()

	var pool *Pool
	if _, err := pool.GetStatus(context.Background(), 1); err == nil || IsNoRows(err) {
		t.Fatalf("expected initialization error, got %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Fatalf("close nil pool: %v", err)
	}
}

func TestStatusByIDQuery(t *testing.T) {
	t.Parallel()

	gdb, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost dbname=test sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("open dry-run database: %v", err)
	}

	query := gdb.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var status Status
		return statusByID(tx, 42).Take(&status)
	})
	if !strings.Contains(query, `FROM "statuses"`) {
		t.Fatalf("query does not read statuses: %s", query)
	}
	if !strings.Contains(query, "id = 42") {
		t.Fatalf("query does not filter by id: %s", query)
	}
	if strings.Contains(strings.ToUpper(query), "UPDATE") || strings.Contains(strings.ToUpper(query), "INSERT") {
		t.Fatalf("status lookup must be read-only: %s", query)
	}
}

func TestIsNoRows(t *testing.T) {
	t.Parallel()

	if !IsNoRows(ErrNoRows) {
		t.Fatalf("expected ErrNoRows to match")
	}
	if IsNoRows(errors.New("boom")) {
		t.Fatalf("did not expect arbitrary error to match")
	}
}
