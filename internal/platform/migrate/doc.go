// Package migrate applies the embedded goose migrations for each supported
// database driver.
package migrate
