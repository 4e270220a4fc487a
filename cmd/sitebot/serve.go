package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sitewise/sitebot/chat"
	"github.com/sitewise/sitebot/corpus"
)

// Run executes the serve command. The corpus builds in the background
// so the API is reachable immediately; /chat degrades gracefully until
// the build finishes.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := deps.buildCorpus(ctx); err != nil {
			deps.Logger.Error("corpus build failed", "err", err)
		}
	}()

	srv := &http.Server{
		Addr:              c.Addr,
		Handler:           newServer(deps.Corpus, deps.Responder, deps.Logger, deps.buildCorpus),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		deps.Logger.Info("listening", "addr", c.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// server is the HTTP API over a corpus and responder.
type server struct {
	corpus    *corpus.Corpus
	responder *chat.Responder
	logger    *slog.Logger
	rebuild   func(ctx context.Context) error
	mux       *http.ServeMux
}

func newServer(c *corpus.Corpus, r *chat.Responder, logger *slog.Logger, rebuild func(ctx context.Context) error) *server {
	s := &server{corpus: c, responder: r, logger: logger, rebuild: rebuild}
	s.mux = http.NewServeMux()
	s.mux.HandleFunc("POST /chat", s.handleChat)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /stats", s.handleStats)
	s.mux.HandleFunc("POST /init", s.handleInit)
	return s
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func (s *server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	switch s.corpus.State() {
	case corpus.StateReady:
	case corpus.StateEmpty, corpus.StateBuilding:
		writeJSON(w, http.StatusOK, chatResponse{
			Response: "I'm still learning the website content. Please try again in a moment.",
		})
		return
	case corpus.StateFailed:
		writeJSON(w, http.StatusOK, chatResponse{
			Response: "The site content is unavailable right now. Please try again later.",
		})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: s.responder.Respond(req.Message)})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"state":  string(s.corpus.State()),
	})
}

func (s *server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.corpus.Stats())
}

// handleInit triggers a corpus rebuild in the background. A build
// already in flight reports 409.
func (s *server) handleInit(w http.ResponseWriter, r *http.Request) {
	if s.corpus.State() == corpus.StateBuilding {
		writeError(w, http.StatusConflict, "a build is already in progress")
		return
	}
	go func() {
		if err := s.rebuild(context.WithoutCancel(r.Context())); err != nil {
			s.logger.Error("rebuild failed", "err", err)
		}
	}()
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "building"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
