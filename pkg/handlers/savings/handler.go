// Package savings exposes the savings ledger over HTTP.
package savings

import (
	"fmt"
	"net/http"
	"time"

	"github.com/costlens/costlens/pkg/adapters"
	"github.com/costlens/costlens/pkg/handlers/render"
	"github.com/costlens/costlens/pkg/models/api"
	"github.com/costlens/costlens/pkg/models/domain"
	"github.com/costlens/costlens/pkg/services/savings"
	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
)

const dateLayout = "2006-01-02"

type Handler struct {
	savings savings.Service
}

func NewHandler(svc savings.Service) *Handler {
	return &Handler{savings: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/savings", h.Record)
	r.Get("/savings", h.List)
	r.Get("/savings/summary", h.Summary)
}

func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	var req api.SavingsEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.BadRequest(w, r, "invalid JSON payload")
		return
	}

	input, err := adapters.MapSavingsRequestApiToDomain(req)
	if err != nil {
		render.BadRequest(w, r, err.Error())
		return
	}

	recorded, err := h.savings.Record(r.Context(), input)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, r, http.StatusCreated, api.SavingsReceipt{
		ID:         recorded.ID,
		ResourceID: recorded.ResourceID,
		Cloud:      recorded.Cloud,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.SavingsFilter{Cloud: r.URL.Query().Get("cloud")}

	start, err := parseDateParam(r, "startDate")
	if err != nil {
		render.BadRequest(w, r, err.Error())
		return
	}
	filter.StartDate = start

	end, err := parseDateParam(r, "endDate")
	if err != nil {
		render.BadRequest(w, r, err.Error())
		return
	}
	if end != nil {
		// The range is inclusive of the whole end day.
		endOfDay := end.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &endOfDay
	}

	report, err := h.savings.List(r.Context(), filter)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, r, http.StatusOK, adapters.MapSavingsReportDomainToApi(report))
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.savings.Summary(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, r, http.StatusOK, adapters.MapSavingsSummaryDomainToApi(summary))
}

func parseDateParam(r *http.Request, name string) (*time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}

	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: expected format %s", name, value, dateLayout)
	}
	return &date, nil
}
