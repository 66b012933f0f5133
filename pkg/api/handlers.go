package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/matzehuels/bestfirst/pkg/buildinfo"
	"github.com/matzehuels/bestfirst/pkg/errors"
	"github.com/matzehuels/bestfirst/pkg/render"
	"github.com/matzehuels/bestfirst/pkg/solver"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	info := buildinfo.Get()
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: info.Version, Commit: info.Commit})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	out := make(map[string][]solver.Algorithm)
	for _, p := range solver.Problems() {
		out[p] = solver.Algorithms(p)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solver.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request"))
		return
	}

	if limit := s.MaxTimeout.Milliseconds(); limit > 0 && req.TimeoutMS > limit {
		req.TimeoutMS = limit
	}

	format := r.URL.Query().Get("format")
	switch format {
	case "", "json":
	case "dot", "svg":
		maxNodes := DefaultMaxNodes
		if v := r.URL.Query().Get("max_nodes"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				s.fail(w, r, errors.New(errors.ErrCodeInvalidInput, "max_nodes must be a positive integer"))
				return
			}
			maxNodes = n
		}
		req.Render = &render.Options{MaxNodes: maxNodes, Detailed: true}
	default:
		s.fail(w, r, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want json, dot or svg)", format))
		return
	}

	res, err := s.Runner.Solve(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	switch format {
	case "dot":
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(render.ToDOT(res.Graph)))
	case "svg":
		svg, err := render.RenderSVG(r.Context(), render.ToDOT(res.Graph))
		if err != nil {
			s.fail(w, r, errors.Wrap(errors.ErrCodeInternal, err, "render svg"))
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(svg)
	default:
		writeJSON(w, http.StatusOK, res)
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := string(errors.GetCode(err))
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	if status >= 500 {
		s.Logger.Error("request failed", "path", r.URL.Path, "id", RequestIDFrom(r.Context()), "err", err)
	}
	writeError(w, status, code, errors.UserMessage(err))
}

// statusFor maps an error to an HTTP status.
func statusFor(err error) int {
	code := errors.GetCode(err)
	switch {
	case code == errors.ErrCodeTimeout || stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case code == errors.ErrCodeInvalidInput || strings.HasPrefix(string(code), "INVALID_"):
		return http.StatusBadRequest
	case code == errors.ErrCodeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
