package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/akulagin/shopapi/internal/model"
)

type createOrderRequest struct {
	Customer customerDTO    `json:"customer"`
	Items    []orderItemDTO `json:"items"`
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Category:  it.Category,
			Quantity:  it.Quantity,
		})
	}
	o, err := s.orders.PlaceOrder(r.Context(), sessionToken(r), model.Customer(req.Customer), items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderDTO(o))
}

func (s *Server) listMyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.ListMyOrders(r.Context(), sessionToken(r))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]orderDTO, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderDTO(&orders[i]))
	}
	writeJSON(w, http.StatusOK, out)
}
