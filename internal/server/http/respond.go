package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/akulagin/shopapi/internal/errs"
	"github.com/akulagin/shopapi/internal/model"
)

type errorBody struct {
	Error string `json:"error"`
}

// userDTO is the sanitized user representation; the password hash never
// crosses this boundary.
type userDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type customerDTO struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Note    string `json:"note"`
}

type orderItemDTO struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
}

type orderDTO struct {
	ID        string         `json:"id"`
	Customer  customerDTO    `json:"customer"`
	Items     []orderItemDTO `json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
}

func toUserDTO(u *model.User) userDTO {
	return userDTO{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func toOrderDTO(o *model.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDTO{
			ProductID: it.ProductID,
			Title:     it.Title,
			Category:  it.Category,
			Quantity:  it.Quantity,
		})
	}
	return orderDTO{
		ID:        o.ID,
		Customer:  customerDTO(o.Customer),
		Items:     items,
		CreatedAt: o.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps sentinels to statuses. Anything unclassified becomes a
// generic 500 so internal detail never reaches the client.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, errs.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, errorBody{Error: "email already registered"})
	case errors.Is(err, errs.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid email or password"})
	case errors.Is(err, errs.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
