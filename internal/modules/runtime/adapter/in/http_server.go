package in

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	hclog "github.com/hashicorp/go-hclog"

	runtimedto "socialteam/internal/modules/runtime/dto"
	runtimein "socialteam/internal/modules/runtime/port/in"
	"socialteam/internal/platform/logging"
)

const (
	maxMessageBytes = 1 << 20
	writeTimeout    = 2 * time.Second
	eventBuffer     = 64
)

// ExtensionOrigins are the browser extension origins allowed to call the API.
var ExtensionOrigins = []string{"chrome-extension://*", "moz-extension://*"}

// Server exposes the message protocol over HTTP and a websocket.
type Server struct {
	runtime runtimein.Usecase
	logger  hclog.Logger
	version string
}

func NewServer(runtime runtimein.Usecase, logger hclog.Logger, version string) *Server {
	return &Server{runtime: runtime, logger: logging.OrDiscard(logger), version: version}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: ExtensionOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))
	r.Get("/healthz", s.health)
	r.Post("/messages", s.message)
	r.Get("/ws", s.socket)
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, runtimedto.HealthOutput{
		Status:  "ok",
		Version: s.version,
		Badge:   s.runtime.Badge(r.Context()),
	})
}

func (s *Server) message(w http.ResponseWriter, r *http.Request) {
	var env runtimedto.Envelope
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMessageBytes))
	if err := dec.Decode(&env); err != nil {
		writeJSON(w, http.StatusBadRequest, runtimedto.ErrorResponse{Error: "invalid message: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.runtime.Dispatch(r.Context(), env))
}

// socket reads envelopes and answers each with a Reply carrying the same
// id. Every published event is pushed on the same connection.
func (s *Server) socket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: ExtensionOrigins})
	if err != nil {
		s.logger.Debug("websocket accept failed", "error", err)
		return
	}
	conn.SetReadLimit(maxMessageBytes)
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	events, unsubscribe := s.runtime.Subscribe(eventBuffer)
	defer unsubscribe()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				if err := write(ctx, conn, evt); err != nil {
					s.logger.Debug("push event failed", "type", evt.Type, "error", err)
					cancel()
					return
				}
			}
		}
	}()

	for {
		var env runtimedto.Envelope
		if err := wsjson.Read(ctx, conn, &env); err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure && ctx.Err() == nil {
				s.logger.Debug("websocket read ended", "error", err)
			}
			return
		}
		reply := runtimedto.Reply{ID: env.ID, Response: s.runtime.Dispatch(ctx, env)}
		if err := write(ctx, conn, reply); err != nil {
			s.logger.Debug("reply failed", "id", env.ID, "error", err)
			return
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, v any) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
