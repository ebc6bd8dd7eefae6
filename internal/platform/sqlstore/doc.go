// Package sqlstore holds the database/sql task store shared by the postgres
// and sqlite packages. A Dialect supplies the statements and the driver
// error mapping; the scan, logging and error flow live here.
package sqlstore
