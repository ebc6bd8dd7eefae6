// Package service contains the application use cases. It sits between the
// HTTP handlers in internal/api and the store interfaces in internal/store,
// and never depends on a concrete database.
package service
