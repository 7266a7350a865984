package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"orderdesk/service"
)

// Services bundles the three entity services the router needs.
type Services struct {
	Customers *service.CustomerService
	Items     *service.ItemService
	Orders    *service.OrderService
}

// NewRouter mounts the CRUD routes for the three entities plus a
// liveness endpoint.
func NewRouter(svcs Services, log *slog.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(RequestID, Recover(log), AccessLog(log))

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	c := NewCustomerHandler(svcs.Customers)
	r.HandleFunc("/customers", c.Create).Methods(http.MethodPost)
	r.HandleFunc("/customers/{id}", c.Get).Methods(http.MethodGet)
	r.HandleFunc("/customers/{id}", c.Update).Methods(http.MethodPut)
	r.HandleFunc("/customers/{id}", c.Delete).Methods(http.MethodDelete)

	it := NewItemHandler(svcs.Items)
	r.HandleFunc("/items", it.Create).Methods(http.MethodPost)
	r.HandleFunc("/items/{id}", it.Get).Methods(http.MethodGet)
	r.HandleFunc("/items/{id}", it.Update).Methods(http.MethodPut)
	r.HandleFunc("/items/{id}", it.Delete).Methods(http.MethodDelete)

	o := NewOrderHandler(svcs.Orders)
	r.HandleFunc("/orders", o.Create).Methods(http.MethodPost)
	r.HandleFunc("/orders/{id}", o.Get).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id}", o.Update).Methods(http.MethodPut)
	r.HandleFunc("/orders/{id}", o.Delete).Methods(http.MethodDelete)

	return r
}
