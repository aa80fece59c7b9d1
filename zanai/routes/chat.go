// zanai/routes/chat.go
package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"zanai/zanai/config"
	"zanai/zanai/controllers"
	"zanai/zanai/middlewares"
	"zanai/zanai/types"
)

func ChatRoutes(ctrl *controllers.ChatController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))
		// POST /chat/send : one message in, one reply out
		gr.Post("/send", func(w http.ResponseWriter, r *http.Request) {
			var req types.SendRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				middlewares.WriteError(w, http.StatusBadRequest, "Invalid request body")
				return
			}
			reply, err := ctrl.Send(r.Context(), req.Message)
			if err != nil {
				if errors.Is(err, controllers.ErrEmptyMessage) {
					middlewares.WriteError(w, http.StatusBadRequest, "Message is required")
					return
				}
				middlewares.WriteError(w, http.StatusInternalServerError, "Server error")
				return
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(types.SendResponse{Reply: reply})
		})
	})
	return r
}
