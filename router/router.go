package router

import (
	"net/http"

	"notedeck/app/controllers"
)

func NewRouter(healthCtrl *controllers.HealthController, userCtrl *controllers.UserController, noteCtrl *controllers.NoteController) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", healthCtrl.Ping)

	// users
	mux.HandleFunc("GET /api/users", userCtrl.List)
	mux.HandleFunc("POST /api/users", userCtrl.Create)
	mux.HandleFunc("GET /api/users/{id}", userCtrl.Get)
	mux.HandleFunc("PUT /api/users/{id}", userCtrl.Update)
	mux.HandleFunc("DELETE /api/users/{id}", userCtrl.Delete)
	mux.HandleFunc("GET /api/users/{id}/notes", userCtrl.ListNotes)
	mux.HandleFunc("DELETE /api/users/{id}/notes", userCtrl.DeleteNotes)
	mux.HandleFunc("GET /api/users/{id}/with-notes", userCtrl.WithNotes)

	// notes; fixed paths before the {id} wildcard
	mux.HandleFunc("GET /api/notes", noteCtrl.List)
	mux.HandleFunc("POST /api/notes", noteCtrl.Create)
	mux.HandleFunc("GET /api/notes/search", noteCtrl.Search)
	mux.HandleFunc("GET /api/notes/paginated", noteCtrl.Paginated)
	mux.HandleFunc("GET /api/notes/with-users", noteCtrl.WithUsers)
	mux.HandleFunc("GET /api/notes/{id}", noteCtrl.Get)
	mux.HandleFunc("PUT /api/notes/{id}", noteCtrl.Update)
	mux.HandleFunc("DELETE /api/notes/{id}", noteCtrl.Delete)

	return mux
}
