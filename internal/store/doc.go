// Package store defines interfaces for data persistence operations.
// The interfaces keep the service layer independent of the database in use;
// implementations live under internal/platform.
package store
