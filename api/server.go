// Package api exposes the tree over HTTP. Handlers serialize all tree
// access through one mutex; the engine itself is single threaded.
package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/keydex/keydex/btree"
	"github.com/keydex/keydex/pkg/x_log"
)

// Server wraps one tree instance behind a chi router.
type Server struct {
	mu   sync.Mutex
	tree *btree.Tree

	addr string
	http *http.Server
}

// NewServer builds a server over tree listening on addr.
func NewServer(tree *btree.Tree, addr string) *Server {
	s := &Server{tree: tree, addr: addr}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/values", handleInsert(s))        // insert a value, key auto-generated
		r.Post("/values/random", handleRandom(s)) // insert a random value
		r.Get("/keys/{key}", handleSearch(s))     // point lookup
		r.Delete("/keys/{key}", handleRemove(s))  // delete by key
		r.Get("/range", handleRange(s))           // inclusive range scan
		r.Post("/reset", handleReset(s))          // drop everything
		r.Get("/tree", handleTree(s))             // level-order dump
	})

	s.http = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	log := x_log.With("api")
	log.Info().Str("addr", s.addr).Msg("http api listening")
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops listening.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
