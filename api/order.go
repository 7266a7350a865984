package api

import (
	"net/http"

	"orderdesk/service"
)

// OrderHandler maps the /orders routes onto the order service.
type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type orderRequest struct {
	ID         *uint   `json:"id,omitempty"`
	CustomerID *uint   `json:"customer_id"`
	ItemID     *uint   `json:"item_id"`
	Quantity   *int    `json:"quantity"`
	Notes      *string `json:"notes,omitempty"`
}

func (req orderRequest) input() (service.OrderInput, bool) {
	if req.CustomerID == nil || req.ItemID == nil || req.Quantity == nil {
		return service.OrderInput{}, false
	}
	in := service.OrderInput{
		CustomerID: *req.CustomerID,
		ItemID:     *req.ItemID,
		Quantity:   *req.Quantity,
	}
	if req.ID != nil {
		in.ID = *req.ID
	}
	if req.Notes != nil {
		in.Notes = *req.Notes
	}
	return in, true
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	in, ok := req.input()
	if !ok {
		writeError(w, http.StatusBadRequest, "customer_id, item_id and quantity are required")
		return
	}
	o, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	o, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req orderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ID != nil && *req.ID != id {
		writeError(w, http.StatusBadRequest, "body id does not match path id")
		return
	}
	in, ok := req.input()
	if !ok {
		writeError(w, http.StatusBadRequest, "customer_id, item_id and quantity are required")
		return
	}
	o, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
