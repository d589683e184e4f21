package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coursehub/coursehub-backend/internal/api/httpx"
	"github.com/coursehub/coursehub-backend/internal/api/validate"
	"github.com/coursehub/coursehub-backend/internal/middleware"
	"github.com/coursehub/coursehub-backend/internal/services"
)

type UserHandler struct {
	Svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler { return &UserHandler{Svc: svc} }

// Me returns the public profile of the authenticated caller.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok {
		// unreachable behind the auth gate
		httpx.WriteMessage(w, http.StatusUnauthorized, "Access Denied")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u.Public())
}

type createUserReq struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteValidationErrors(w, []string{"request body must be valid JSON"})
		return
	}

	_, err := h.Svc.Register(req.FirstName, req.LastName, req.EmailAddress, req.Password)
	if err != nil {
		var errs validate.Errs
		if errors.As(err, &errs) {
			httpx.WriteValidationErrors(w, errs.Messages())
			return
		}
		httpx.WriteServerError(w, err.Error())
		return
	}

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
}
