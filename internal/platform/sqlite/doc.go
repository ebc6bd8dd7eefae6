// Package sqlite provides an embedded SQLite implementation of the store
// interfaces, built on the pure-Go modernc.org/sqlite driver. It backs local
// development without a PostgreSQL server and the end-to-end tests.
package sqlite
