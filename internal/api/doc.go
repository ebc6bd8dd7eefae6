// Package api handles incoming HTTP requests, routing, request decoding,
// and response formatting. It adapts the task service to the JSON routes
// consumed by the todo client:
//
//	GET    /            list tasks
//	POST   /new         create a task from {"description": ...}
//	DELETE /delete/{id} delete a task
//	GET    /health      liveness probe
package api
