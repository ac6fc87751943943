package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/npezzotti/birdseye/internal/config"
	"github.com/npezzotti/birdseye/internal/database"
	"github.com/npezzotti/birdseye/internal/server"
	"github.com/teris-io/shortid"
)

type BirdseyeApp struct {
	log            *log.Logger
	db             database.BirdseyeRepository
	mux            *http.Server
	cs             *server.ChatServer
	signingKey     []byte
	allowedOrigins []string
	// generateShortId is swappable in tests
	generateShortId func() (string, error)
}

func NewBirdseyeApp(mux *http.ServeMux, logger *log.Logger, cs *server.ChatServer, db database.BirdseyeRepository, cfg *config.Config) *BirdseyeApp {
	s := &BirdseyeApp{
		log:             logger,
		db:              db,
		cs:              cs,
		signingKey:      cfg.SigningKey,
		allowedOrigins:  cfg.AllowedOrigins,
		generateShortId: shortid.Generate,
	}

	mux.HandleFunc("POST /api/auth/register", s.createAccount)
	mux.HandleFunc("POST /api/auth/login", s.login)
	mux.HandleFunc("GET /api/auth/session", s.authMiddleware(s.session))
	mux.Handle("GET /api/auth/logout", s.authMiddleware(s.logout))
	mux.Handle("GET /api/friends", s.authMiddleware(s.listFriends))
	mux.Handle("DELETE /api/friends", s.authMiddleware(s.removeFriend))
	mux.Handle("POST /api/friends/requests", s.authMiddleware(s.sendFriendRequest))
	mux.Handle("GET /api/friends/requests", s.authMiddleware(s.listFriendRequests))
	mux.Handle("POST /api/friends/requests/accept", s.authMiddleware(s.acceptFriendRequest))
	mux.Handle("POST /api/friends/requests/deny", s.authMiddleware(s.denyFriendRequest))
	mux.Handle("GET /api/messages", s.authMiddleware(s.getMessages))
	mux.HandleFunc("GET /ws", s.serveWs)

	h := handlers.CORS(
		handlers.MaxAge(3600),
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept"}),
		handlers.AllowCredentials(),
	)(mux)

	h = s.errorHandler(h)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	s.mux = srv
	return s
}

func (s *BirdseyeApp) Start() error {
	s.log.Printf("starting server on %s\n", s.mux.Addr)
	return s.mux.ListenAndServe()
}

func (s *BirdseyeApp) Shutdown(ctx context.Context) error {
	s.log.Println("shutting down HTTP server...")
	if err := s.mux.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
