// Package domain contains the core business entities of the todo application.
// It is independent of any storage or delivery mechanism.
package domain
