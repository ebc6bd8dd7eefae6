package main

import (
	"net/http"

	"github.com/phrazzld/todo-api/internal/api"
)

// setupRouter creates the application router from the application's services.
func (app *application) setupRouter() http.Handler {
	return api.NewRouter(api.RouterConfig{
		TaskService:    app.taskService,
		Logger:         app.logger,
		AllowedOrigins: app.config.Server.AllowedOrigins,
		RequestLogging: true,
	})
}
