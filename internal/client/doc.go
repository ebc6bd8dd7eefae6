// Package client is a Go client for the todo HTTP API.
//
// A Client keeps a local cache of the tasks it has seen. ListTasks rebuilds
// the cache from the server, AddTask appends to it and DeleteTask removes
// from it. The cache is a convenience for front ends and may be stale; the
// server is authoritative.
package client
