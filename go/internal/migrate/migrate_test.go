package migrate

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations, migrationsDir+"/*.sql")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no migrations embedded")
	}

	var all strings.Builder
	for _, f := range files {
		data, err := fs.ReadFile(migrations, f)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "-- +goose Up") || !strings.Contains(string(data), "-- +goose Down") {
			t.Errorf("%s lacks goose annotations", f)
		}
		all.Write(data)
	}

	// Names the repositories match on when translating constraint errors.
	for _, want := range []string{
		"join_requests_one_pending_idx",
		"UNIQUE (team_id, position)",
		"pg_notify('team_outbox_events'",
	} {
		if !strings.Contains(all.String(), want) {
			t.Errorf("schema is missing %q", want)
		}
	}
}

func TestNewRequiresDSN(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected an error for an empty dsn")
	}
}
