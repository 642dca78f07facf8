// AngelaMos | 2026
// handler.go

package animal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/DennisRono/chavfana-backend/internal/core"
	"github.com/DennisRono/chavfana-backend/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/animals", func(r chi.Router) {
		r.Get("/project/{projectID}", h.ListAnimalsByProject)
		r.Get("/groups/{projectID}", h.ListGroupsByProject)
		r.Post("/visits", h.CreateVisit)
		r.Get("/{id}/visits", h.ListVisitsByAnimal)
		r.Get("/{id}", h.GetAnimal)
	})
}

func (h *Handler) GetAnimal(w http.ResponseWriter, r *http.Request) {
	animal, err := h.service.GetAnimal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "animal")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToAnimalResponse(animal))
}

func (h *Handler) ListAnimalsByProject(w http.ResponseWriter, r *http.Request) {
	animals, err := h.service.ListAnimalsByProject(
		r.Context(),
		chi.URLParam(r, "projectID"),
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToAnimalResponseList(animals))
}

func (h *Handler) ListGroupsByProject(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.ListGroupsByProject(
		r.Context(),
		chi.URLParam(r, "projectID"),
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToGroupResponseList(groups))
}

func (h *Handler) CreateVisit(w http.ResponseWriter, r *http.Request) {
	var req CreateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	visit, err := h.service.CreateVisit(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.BadRequest(w, "animal does not exist")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, err.Error())
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, ToVisitResponse(visit))
}

func (h *Handler) ListVisitsByAnimal(w http.ResponseWriter, r *http.Request) {
	visits, err := h.service.ListVisitsByAnimal(
		r.Context(),
		chi.URLParam(r, "id"),
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToVisitResponseList(visits))
}
