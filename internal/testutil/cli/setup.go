package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when lower-level tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(context.Background(), db)
	t.Cleanup(func() { _ = appInstance.Close() })

	return db, appInstance
}

// CreateTestItem wraps testutil.CreateTestItem for CLI tests and reloads the
// store so the App sees the row
func CreateTestItem(t *testing.T, appInstance *app.App, task string, icon models.Icon) models.TodoItem {
	t.Helper()
	item := testutil.CreateTestItem(t, appInstance.DB(), task, icon)
	if err := appInstance.Store.Refresh(context.Background()); err != nil {
		t.Fatalf("Failed to refresh store: %v", err)
	}
	return item
}
