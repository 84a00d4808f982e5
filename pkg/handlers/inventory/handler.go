// Package inventory exposes the resource collections over HTTP: one upsert,
// list and get-by-key endpoint per resource kind.
package inventory

import (
	"net/http"
	"net/url"

	"github.com/costlens/costlens/pkg/adapters"
	"github.com/costlens/costlens/pkg/handlers/render"
	"github.com/costlens/costlens/pkg/models/api"
	"github.com/costlens/costlens/pkg/services/inventory"
	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
)

type Handler struct {
	inventory inventory.Service
}

func NewHandler(svc inventory.Service) *Handler {
	return &Handler{inventory: svc}
}

// Routes mounts the per-kind collection endpoints. ARN-keyed kinds take
// the key URL-escaped.
func (h *Handler) Routes(r chi.Router) {
	r.Put("/instances", h.UpsertInstance)
	r.Get("/instances", h.ListInstances)
	r.Get("/instances/{id}", h.GetInstance)

	r.Put("/loadbalancers", h.UpsertLoadBalancer)
	r.Get("/loadbalancers", h.ListLoadBalancers)
	r.Get("/loadbalancers/{arn}", h.GetLoadBalancer)

	r.Put("/autoscaling-groups", h.UpsertAutoScalingGroup)
	r.Get("/autoscaling-groups", h.ListAutoScalingGroups)
	r.Get("/autoscaling-groups/{arn}", h.GetAutoScalingGroup)

	r.Put("/volumes", h.UpsertVolume)
	r.Get("/volumes", h.ListVolumes)
	r.Get("/volumes/{id}", h.GetVolume)

	r.Put("/db-instances", h.UpsertDBInstance)
	r.Get("/db-instances", h.ListDBInstances)
	r.Get("/db-instances/{id}", h.GetDBInstance)
}

func (h *Handler) UpsertInstance(w http.ResponseWriter, r *http.Request) {
	var req api.ComputeInstance
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.BadRequest(w, r, "invalid JSON payload")
		return
	}

	receipt, err := h.inventory.UpsertInstance(r.Context(), adapters.MapInstanceApiToDomain(req))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, r, http.StatusOK, api.UpsertReceipt{ID: receipt.Key, Region: receipt.Region})
}

func (h *Handler) ListInstances(w http.ResponseWriter, r *http.Request) {
	records, err := h.inventory.ListInstances(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	items := make([]api.ComputeInstance, 0, len(records))
	for _, rec := range records {
		items = append(items, adapters.MapInstanceDomainToApi(rec))
	}
	render.JSON(w, r, http.StatusOK, api.ResourceList[api.ComputeInstance]{Items: items, Count: len(items)})
}

func (h *Handler) GetInstance(w http.ResponseWriter, r *http.Request) {
	rec, err := h.inventory.GetInstance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		render.Error(w, r, err)
		return
	}
	render.JSON(w, r, http.StatusOK, adapters.MapInstanceDomainToApi(rec))
}

func (h *Handler) UpsertLoadBalancer(w http.ResponseWriter, r *http.Request) {
	var req api.LoadBalancer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.BadRequest(w, r, "invalid JSON payload")
		return
	}

	receipt, err := h.inventory.UpsertLoadBalancer(r.Context(), adapters.MapLoadBalancerApiToDomain(req))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, r, http.StatusOK, api.UpsertReceipt{
		Name:   req.Name,
		ARN:    receipt.Key,
		Region: receipt.Region,
	})
}

func (h *Handler) ListLoadBalancers(w http.ResponseWriter, r *http.Request) {
	records, err := h.inventory.ListLoadBalancers(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	items := make([]api.LoadBalancer, 0, len(records))
	for _, rec := range records {
		items = append(items, adapters.MapLoadBalancerDomainToApi(rec))
	}
	render.JSON(w, r, http.StatusOK, api.ResourceList[api.LoadBalancer]{Items: items, Count: len(items)})
}

func (h *Handler) GetLoadBalancer(w http.ResponseWriter, r *http.Request) {
	arn := unescapeKey(chi.URLParam(r, "arn"))

	rec, err := h.inventory.GetLoadBalancer(r.Context(), arn)
	if err != nil {
		render.Error(w, r, err)
		return
	}
	render.JSON(w, r, http.StatusOK, adapters.MapLoadBalancerDomainToApi(rec))
}

func (h *Handler) UpsertAutoScalingGroup(w http.ResponseWriter, r *http.Request) {
	var req api.AutoScalingGroup
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.BadRequest(w, r, "invalid JSON payload")
		return
	}

	receipt, err := h.inventory.UpsertAutoScalingGroup(r.Context(), adapters.MapAutoScalingGroupApiToDomain(req))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, r, http.StatusOK, api.UpsertReceipt{
		Name:   req.Name,
		ARN:    receipt.Key,
		Region: receipt.Region,
	})
}

func (h *Handler) ListAutoScalingGroups(w http.ResponseWriter, r *http.Request) {
	records, err := h.inventory.ListAutoScalingGroups(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	items := make([]api.AutoScalingGroup, 0, len(records))
	for _, rec := range records {
		items = append(items, adapters.MapAutoScalingGroupDomainToApi(rec))
	}
	render.JSON(w, r, http.StatusOK, api.ResourceList[api.AutoScalingGroup]{Items: items, Count: len(items)})
}

func (h *Handler) GetAutoScalingGroup(w http.ResponseWriter, r *http.Request) {
	arn := unescapeKey(chi.URLParam(r, "arn"))

	rec, err := h.inventory.GetAutoScalingGroup(r.Context(), arn)
	if err != nil {
		render.Error(w, r, err)
		return
	}
	render.JSON(w, r, http.StatusOK, adapters.MapAutoScalingGroupDomainToApi(rec))
}

func (h *Handler) UpsertVolume(w http.ResponseWriter, r *http.Request) {
	var req api.EBSVolume
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.BadRequest(w, r, "invalid JSON payload")
		return
	}

	receipt, err := h.inventory.UpsertVolume(r.Context(), adapters.MapVolumeApiToDomain(req))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, r, http.StatusOK, api.UpsertReceipt{ID: receipt.Key, Region: receipt.Region})
}

func (h *Handler) ListVolumes(w http.ResponseWriter, r *http.Request) {
	records, err := h.inventory.ListVolumes(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	items := make([]api.EBSVolume, 0, len(records))
	for _, rec := range records {
		items = append(items, adapters.MapVolumeDomainToApi(rec))
	}
	render.JSON(w, r, http.StatusOK, api.ResourceList[api.EBSVolume]{Items: items, Count: len(items)})
}

func (h *Handler) GetVolume(w http.ResponseWriter, r *http.Request) {
	rec, err := h.inventory.GetVolume(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		render.Error(w, r, err)
		return
	}
	render.JSON(w, r, http.StatusOK, adapters.MapVolumeDomainToApi(rec))
}

func (h *Handler) UpsertDBInstance(w http.ResponseWriter, r *http.Request) {
	var req api.DBInstance
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.BadRequest(w, r, "invalid JSON payload")
		return
	}

	receipt, err := h.inventory.UpsertDBInstance(r.Context(), adapters.MapDBInstanceApiToDomain(req))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, r, http.StatusOK, api.UpsertReceipt{ID: receipt.Key, Region: receipt.Region})
}

func (h *Handler) ListDBInstances(w http.ResponseWriter, r *http.Request) {
	records, err := h.inventory.ListDBInstances(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	items := make([]api.DBInstance, 0, len(records))
	for _, rec := range records {
		items = append(items, adapters.MapDBInstanceDomainToApi(rec))
	}
	render.JSON(w, r, http.StatusOK, api.ResourceList[api.DBInstance]{Items: items, Count: len(items)})
}

func (h *Handler) GetDBInstance(w http.ResponseWriter, r *http.Request) {
	rec, err := h.inventory.GetDBInstance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		render.Error(w, r, err)
		return
	}
	render.JSON(w, r, http.StatusOK, adapters.MapDBInstanceDomainToApi(rec))
}

// unescapeKey tolerates both raw and URL-escaped keys in the path.
func unescapeKey(key string) string {
	unescaped, err := url.PathUnescape(key)
	if err != nil {
		return key
	}
	return unescaped
}
