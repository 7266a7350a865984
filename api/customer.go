package api

import (
	"net/http"

	"orderdesk/service"
)

// CustomerHandler maps the /customers routes onto the customer service.
type CustomerHandler struct {
	svc *service.CustomerService
}

func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// customerRequest is the wire shape for create and update. Pointers
// distinguish absent fields from zero values so required-field checks can
// run before the service sees the input.
type customerRequest struct {
	ID    *uint   `json:"id,omitempty"`
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

func (req customerRequest) input() (service.CustomerInput, bool) {
	if req.Name == nil || req.Phone == nil {
		return service.CustomerInput{}, false
	}
	in := service.CustomerInput{Name: *req.Name, Phone: *req.Phone}
	if req.ID != nil {
		in.ID = *req.ID
	}
	return in, true
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	in, ok := req.input()
	if !ok {
		writeError(w, http.StatusBadRequest, "name and phone are required")
		return
	}
	c, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req customerRequest
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
		writeError(w, http.StatusBadRequest, "name and phone are required")
		return
	}
	c, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
