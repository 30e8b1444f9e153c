package facade

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/techlens/provider-lab/internal/models"
	"github.com/techlens/provider-lab/internal/providers"
	"github.com/techlens/provider-lab/internal/templates"
	"github.com/techlens/provider-lab/pkg/handlers"
	"github.com/techlens/provider-lab/pkg/pagination"
	"github.com/techlens/provider-lab/pkg/routes"
)

// Handler exposes the provider facade over HTTP.
type Handler struct {
	facade     System
	pagination pagination.Config
	logger     *slog.Logger
}

// NewHandler creates a provider facade handler.
func NewHandler(facade System, pagination pagination.Config, logger *slog.Logger) *Handler {
	return &Handler{
		facade:     facade,
		pagination: pagination,
		logger:     logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/providers",
		Description: "Provider and model management",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.ListProviders},
			{Method: "POST", Pattern: "", Handler: h.AddProvider},
			{Method: "POST", Pattern: "/test", Handler: h.TestConfig},
			{Method: "GET", Pattern: "/{id}", Handler: h.GetProvider},
			{Method: "PUT", Pattern: "/{id}", Handler: h.EditProvider},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.RemoveProvider},
			{Method: "POST", Pattern: "/{id}/test", Handler: h.TestProvider},
			{Method: "GET", Pattern: "/{id}/models", Handler: h.ListModels},
			{Method: "POST", Pattern: "/{id}/models", Handler: h.AddModel},
		},
	}
}

// ModelRoutes returns the routes addressing models by their own id.
func (h *Handler) ModelRoutes() routes.Group {
	return routes.Group{
		Prefix:      "/models",
		Description: "Model management by id",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}", Handler: h.GetModel},
			{Method: "PUT", Pattern: "/{id}", Handler: h.EditModel},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.RemoveModel},
		},
	}
}

func (h *Handler) ListProviders(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := providers.FiltersFromQuery(r.URL.Query())

	result, err := h.facade.ListProviders(r.Context(), page, filters)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) GetProvider(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidID)
		return
	}

	p, err := h.facade.GetProvider(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) AddProvider(w http.ResponseWriter, r *http.Request) {
	var req AddProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	p, err := h.facade.AddProvider(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, p)
}

func (h *Handler) EditProvider(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidID)
		return
	}

	var req EditProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	p, err := h.facade.EditProvider(r.Context(), id, req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) RemoveProvider(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidID)
		return
	}

	if err := h.facade.RemoveProvider(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) TestConfig(w http.ResponseWriter, r *http.Request) {
	var req TestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.facade.TestConfig(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) TestProvider(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidID)
		return
	}

	result, err := h.facade.TestProvider(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) ListModels(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidID)
		return
	}

	result, err := h.facade.ListModels(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) AddModel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidID)
		return
	}

	var cmd models.CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	m, err := h.facade.AddModel(r.Context(), id, cmd)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, m)
}

func (h *Handler) GetModel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidID)
		return
	}

	m, err := h.facade.GetModel(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, m)
}

func (h *Handler) EditModel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidID)
		return
	}

	var cmd models.UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	m, err := h.facade.EditModel(r.Context(), id, cmd)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, m)
}

func (h *Handler) RemoveModel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidID)
		return
	}

	if err := h.facade.RemoveModel(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

var errInvalidID = errors.New("invalid id")

// respondError maps domain errors from any facade subsystem to HTTP
// responses. Field-level validation errors get a structured 422 body.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var fieldErrs templates.FieldErrors
	if errors.As(err, &fieldErrs) {
		handlers.RespondFieldErrors(w, fieldErrs)
		return
	}

	status := providers.MapHTTPStatus(err)
	if status == http.StatusInternalServerError {
		status = models.MapHTTPStatus(err)
	}
	if status == http.StatusInternalServerError {
		status = templates.MapHTTPStatus(err)
	}

	handlers.RespondError(w, h.logger, status, err)
}
