// zanai/routes/auth.go
package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"zanai/zanai/controllers"
	"zanai/zanai/middlewares"
	"zanai/zanai/types"
)

func AuthRoutes(ctrl *controllers.AuthController) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		var req types.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			middlewares.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		token, history, err := ctrl.Login(r.Context(), req.Pin)
		if err != nil {
			if errors.Is(err, controllers.ErrInvalidPin) {
				middlewares.WriteError(w, http.StatusBadRequest, "Invalid PIN")
				return
			}
			middlewares.WriteError(w, http.StatusInternalServerError, "Server error")
			return
		}
		if history == nil {
			history = []types.HistoryRecord{}
		}
		raw, err := json.Marshal(history)
		if err != nil {
			middlewares.WriteError(w, http.StatusInternalServerError, "Server error")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(types.LoginResponse{Token: token, History: raw})
	})
	return r
}
