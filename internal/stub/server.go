// Package stub serves a fixed-answer classifier that speaks the /predict
// contract. It is a development and test double, not a model.
package stub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dohr-michael/screener/internal/screening"
)

const (
	PositiveText   = "Positive (High Risk of Diabetes)"
	NegativeText   = "Negative (Low Risk of Diabetes)"
	SuccessMessage = "Prediction successful!"
)

// Options describes the answer the stub gives.
type Options struct {
	Host string
	Port int

	// Class is the prediction_class returned for every valid request.
	Class int
	// Probability, when set, is returned as the positive-class probability.
	Probability *float64

	// FailStatus, when non-zero, makes every /predict call fail with this
	// status and FailDetails as the details field.
	FailStatus  int
	FailDetails string
}

// Server is the stub classifier HTTP server.
type Server struct {
	httpServer *http.Server
	opts       Options

	ready chan struct{}
	addr  string
}

// NewServer creates a stub server. It does not listen until Start.
func NewServer(opts Options) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	s := &Server{opts: opts, ready: make(chan struct{})}

	r.Get("/health", s.handleHealth)
	r.Post("/predict", s.handlePredict)

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}
	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening. It blocks until the server is stopped.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	s.addr = ln.Addr().String()
	close(s.ready)
	slog.Info("stub classifier listening", "addr", s.addr, "class", s.opts.Class)
	return s.httpServer.Serve(ln)
}

// Addr waits until Start has bound the listener and returns its address.
func (s *Server) Addr(ctx context.Context) (string, error) {
	select {
	case <-s.ready:
		return s.addr, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type predictResponse struct {
	PredictionClass int      `json:"prediction_class"`
	OutcomeText     string   `json:"outcome_text"`
	Message         string   `json:"message"`
	Probability     *float64 `json:"probability,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if s.opts.FailStatus != 0 {
		slog.Debug("stub forced failure", "status", s.opts.FailStatus)
		writeJSON(w, s.opts.FailStatus, errorResponse{
			Error:   http.StatusText(s.opts.FailStatus),
			Details: s.opts.FailDetails,
		})
		return
	}

	req, err := decodeRequest(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid input", Details: err.Error()})
		return
	}
	slog.Debug("stub prediction", "request", req, "class", s.opts.Class)

	text := NegativeText
	if s.opts.Class == 1 {
		text = PositiveText
	}
	writeJSON(w, http.StatusOK, predictResponse{
		PredictionClass: s.opts.Class,
		OutcomeText:     text,
		Message:         SuccessMessage,
		Probability:     s.opts.Probability,
	})
}

// decodeRequest reads the eight features by wire key and reports every
// missing one.
func decodeRequest(body io.Reader) (screening.Request, error) {
	data, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil {
		return screening.Request{}, fmt.Errorf("read body: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return screening.Request{}, fmt.Errorf("malformed body: %w", err)
	}
	var missing []string
	for _, f := range screening.Fields() {
		v, ok := raw[f.WireKey()]
		if !ok || string(v) == "null" {
			missing = append(missing, f.WireKey())
		}
	}
	if len(missing) > 0 {
		return screening.Request{}, errors.New("missing features: " + strings.Join(missing, ", "))
	}

	var req screening.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return screening.Request{}, fmt.Errorf("non-numeric feature: %w", err)
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
