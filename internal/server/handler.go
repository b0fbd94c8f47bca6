package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cicalc/compound-calculator/internal/advisor"
	"github.com/cicalc/compound-calculator/internal/cache"
	"github.com/cicalc/compound-calculator/internal/calculation"
	"github.com/cicalc/compound-calculator/internal/config"
	"github.com/cicalc/compound-calculator/internal/output"
)

// CalculateHandler serves the solve endpoint: it validates the flat input,
// runs the goal solver and simulator, and returns the assembled report.
// Solved reports are cached by input hash; the AI tip is generated after
// solving and never fails the request.
type CalculateHandler struct {
	engine  *calculation.Engine
	parser  *config.InputParser
	cache   cache.ResultCache
	advisor *advisor.TipAdvisor
	logger  calculation.Logger
}

// NewCalculateHandler wires the solve endpoint. tipAdvisor may be nil to
// disable commentary; a nil results cache falls back to an in-process one.
func NewCalculateHandler(engine *calculation.Engine, results cache.ResultCache, tipAdvisor *advisor.TipAdvisor, logger calculation.Logger) *CalculateHandler {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	if results == nil {
		results = cache.NewMemoryCache()
	}
	return &CalculateHandler{
		engine:  engine,
		parser:  config.NewInputParser(),
		cache:   results,
		advisor: tipAdvisor,
		logger:  logger,
	}
}

type calculateResponse struct {
	*output.Report
	Tip string `json:"tip,omitempty"`
}

func (h *CalculateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input config.CalculationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.parser.Validate(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key, err := cache.Key(&input)
	if err == nil {
		if cached, ok := h.cache.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	request, err := h.parser.BuildRequest(&input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, warnings, err := h.engine.Solve(request)
	if err != nil {
		http.Error(w, err.Error(), solveStatus(err))
		return
	}

	response := calculateResponse{Report: output.BuildReport(result, warnings)}
	if h.advisor != nil {
		response.Tip = h.advisor.Tip(r.Context(), result)
	}

	body, err := json.Marshal(response)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	if key != "" {
		if err := h.cache.Set(r.Context(), key, string(body)); err != nil {
			h.logger.Warnf("failed to cache result: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// solveStatus maps the engine's fatal error kinds to response codes. Inputs
// the algebra cannot serve are unprocessable rather than malformed.
func solveStatus(err error) int {
	switch {
	case errors.Is(err, calculation.ErrMissingInput):
		return http.StatusBadRequest
	case errors.Is(err, calculation.ErrDegenerateSolve), errors.Is(err, calculation.ErrNumericDivergence):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
