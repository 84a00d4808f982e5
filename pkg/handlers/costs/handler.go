// Package costs exposes the aggregation engine's rollup views over HTTP.
package costs

import (
	"net/http"

	"github.com/costlens/costlens/pkg/adapters"
	"github.com/costlens/costlens/pkg/handlers/render"
	"github.com/costlens/costlens/pkg/services/aggregation"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	engine aggregation.Engine
}

func NewHandler(engine aggregation.Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/costs/total", h.TotalCost)
	r.Get("/costs/by-region", h.CostByRegion)
	r.Get("/costs/by-service", h.CostByService)
}

func (h *Handler) TotalCost(w http.ResponseWriter, r *http.Request) {
	totals, err := h.engine.TotalCost(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}
	render.JSON(w, r, http.StatusOK, adapters.MapCostTotalsDomainToApi(totals))
}

func (h *Handler) CostByRegion(w http.ResponseWriter, r *http.Request) {
	rollup, err := h.engine.CostByRegion(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}
	render.JSON(w, r, http.StatusOK, adapters.MapRegionRollupDomainToApi(rollup))
}

func (h *Handler) CostByService(w http.ResponseWriter, r *http.Request) {
	rollup, err := h.engine.CostByService(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}
	render.JSON(w, r, http.StatusOK, adapters.MapServiceRollupDomainToApi(rollup))
}
