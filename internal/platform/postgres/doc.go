// Package postgres provides PostgreSQL implementations of the store
// interfaces. Connections go through the pgx stdlib driver registered as
// "pgx"; see Open.
package postgres
