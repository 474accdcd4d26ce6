package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"snapevents/internal/delivery/http/controllers"
	"snapevents/internal/delivery/http/middleware"
	"snapevents/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Listing *controllers.ListingController
	Block   *controllers.BlockController
	Page    *controllers.EventPageController
	Feed    *controllers.FeedController
	Auth    *controllers.AuthController
	Editor  *controllers.EditorController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Public
	mux.HandleFunc("GET /events", c.Listing.ListEvents)
	mux.HandleFunc("GET /events.ics", c.Feed.Calendar)
	mux.HandleFunc("GET /events/{slug}", c.Page.Show)
	mux.HandleFunc("POST /blocks/{layout}/render", c.Block.Render)

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Editor
	mux.HandleFunc("POST /admin/events", requireAuth(c.Editor.CreateEvent))
	mux.HandleFunc("PUT /admin/events/{id}", requireAuth(c.Editor.UpdateEvent))
	mux.HandleFunc("GET /admin/events/{id}", requireAuth(c.Editor.GetEvent))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
