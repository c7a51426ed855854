// Package sqlite_test contains integration tests for the SQLite
// repositories. All setup goes through setupTestDB, which loads the
// authoritative schema from internal/db so test and production schemas
// cannot drift.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/shopsight/internal/db"
	"github.com/example/shopsight/internal/models"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

func testDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// testOrders is a small fixture ledger with a clear top spender.
func testOrders() []models.Order {
	return []models.Order{
		{OrderID: 1, CustomerID: 1, OrderDate: testDate(2025, 1, 10), TotalAmount: 150, Status: models.StatusCompleted},
		{OrderID: 2, CustomerID: 1, OrderDate: testDate(2025, 2, 1), TotalAmount: 250, Status: models.StatusCompleted},
		{OrderID: 3, CustomerID: 2, OrderDate: testDate(2025, 2, 15), TotalAmount: 300, Status: models.StatusCompleted},
		{OrderID: 4, CustomerID: 3, OrderDate: testDate(2025, 3, 1), TotalAmount: 999, Status: models.StatusPending},
	}
}
