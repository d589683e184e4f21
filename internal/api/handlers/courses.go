package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coursehub/coursehub-backend/internal/api/httpx"
	"github.com/coursehub/coursehub-backend/internal/api/validate"
	"github.com/coursehub/coursehub-backend/internal/middleware"
	"github.com/coursehub/coursehub-backend/internal/models"
	repo "github.com/coursehub/coursehub-backend/internal/repository"
	"github.com/coursehub/coursehub-backend/internal/services"
)

type CourseHandler struct {
	Svc *services.CourseService
}

func NewCourseHandler(svc *services.CourseService) *CourseHandler { return &CourseHandler{Svc: svc} }

type courseReq struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

func (req courseReq) model() models.Course {
	return models.Course{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	}
}

func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.Svc.List()
	if err != nil {
		httpx.WriteServerError(w, err.Error())
		return
	}
	if courses == nil {
		courses = []models.Course{}
	}
	httpx.WriteJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.Svc.Get(chi.URLParam(r, "id"))
	if errors.Is(err, repo.ErrNotFound) {
		httpx.WriteMessage(w, http.StatusNotFound, "Course not found")
		return
	}
	if err != nil {
		httpx.WriteServerError(w, err.Error())
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.CurrentUser(r.Context())

	var req courseReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteValidationErrors(w, []string{"request body must be valid JSON"})
		return
	}

	created, err := h.Svc.Create(actor, req.model())
	if err != nil {
		var errs validate.Errs
		if errors.As(err, &errs) {
			httpx.WriteValidationErrors(w, errs.Messages())
			return
		}
		httpx.WriteServerError(w, err.Error())
		return
	}

	w.Header().Set("Location", "/api/courses/"+created.ID)
	w.WriteHeader(http.StatusCreated)
}

func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.CurrentUser(r.Context())

	var req courseReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteValidationErrors(w, []string{"request body must be valid JSON"})
		return
	}

	err := h.Svc.Update(actor, chi.URLParam(r, "id"), req.model())
	if err != nil {
		h.writeMutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.CurrentUser(r.Context())

	err := h.Svc.Delete(actor, chi.URLParam(r, "id"))
	if err != nil {
		h.writeMutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CourseHandler) writeMutationError(w http.ResponseWriter, err error) {
	var errs validate.Errs
	switch {
	case errors.Is(err, repo.ErrNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Course not found")
	case errors.Is(err, services.ErrForbidden):
		// empty body on purpose
		w.WriteHeader(http.StatusForbidden)
	case errors.As(err, &errs):
		httpx.WriteValidationErrors(w, errs.Messages())
	default:
		httpx.WriteServerError(w, err.Error())
	}
}
