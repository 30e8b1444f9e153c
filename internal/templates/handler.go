package templates

import (
	"log/slog"
	"net/http"

	"github.com/techlens/provider-lab/pkg/handlers"
	"github.com/techlens/provider-lab/pkg/routes"
)

// Handler exposes the template catalog over HTTP.
type Handler struct {
	catalog *Catalog
	logger  *slog.Logger
}

// NewHandler creates a template catalog handler.
func NewHandler(catalog *Catalog, logger *slog.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/templates",
		Description: "Backend template catalog",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{category}", Handler: h.Find},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	view := ListView{
		CloudProviders: toViews(h.catalog.ListByKind(KindCloud)),
		LocalProviders: toViews(h.catalog.ListByKind(KindLocal)),
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	t, err := h.catalog.Get(r.PathValue("category"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ToView(t))
}
