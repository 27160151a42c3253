package preview

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cardflow/gpapi/gpapi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

// API is a HTTP API that previews the GP-API request a canonical request
// compiles to. Nothing is sent to the gateway.
type API struct {
	compiler *gpapi.Compiler
	logger   *slog.Logger
}

func NewAPI(compiler *gpapi.Compiler, logger *slog.Logger) *API {
	return &API{
		compiler: compiler,
		logger:   logger,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/compile", a.compile)
}

func (a *API) compile(w http.ResponseWriter, r *http.Request) {
	dto := CompileRequest{}
	err := json.NewDecoder(r.Body).Decode(&dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req, err := dto.ToAuthorizationRequest()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	wire, err := a.compiler.Compile(req)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			a.logger.Error("compiling request", "err", err)
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(wire)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, gpapi.ErrInvalidRequest),
		errors.Is(err, gpapi.ErrInvalidTagData):
		return http.StatusBadRequest
	case errors.Is(err, gpapi.ErrUnsupported):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
