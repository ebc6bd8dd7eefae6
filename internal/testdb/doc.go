// Package testdb provides database helpers for tests.
//
// OpenSQLite returns a migrated in-memory SQLite database and needs no
// external services, so it backs the default test run. GetTestDBWithT
// connects to PostgreSQL and skips the test unless a test database URL is
// configured:
//
//	func TestPostgresThing(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        tasks := postgres.NewPostgresTaskStore(tx, nil)
//	        // ...
//	    })
//	}
//
// WithTx runs fn inside a transaction that is always rolled back, so tests
// leave no rows behind.
//
// # Environment Variables
//
//   - TODO_TEST_DATABASE_URL: preferred PostgreSQL URL for tests
//   - DATABASE_URL: fallback
package testdb
