// AngelaMos | 2026
// handler.go

package project

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
	r.Route("/projects", func(r chi.Router) {
		r.Post("/planting", h.CreatePlantingProject)
		r.Post("/animal-keeping", h.CreateAnimalKeepingProject)
		r.Get("/", h.ListProjects)
		r.Get("/farm/{farmID}", h.ListProjectsByFarm)

		r.Post("/planting-events", h.CreatePlantingEvent)
		r.Get("/planting-events/{projectID}", h.ListPlantingEvents)

		r.Get("/{id}", h.GetProject)
	})
}

func (h *Handler) CreatePlantingProject(w http.ResponseWriter, r *http.Request) {
	var req CreatePlantingProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	project, err := h.service.CreatePlantingProject(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		h.writeCreateError(w, err)
		return
	}

	core.Created(w, ToProjectResponse(project))
}

func (h *Handler) CreateAnimalKeepingProject(
	w http.ResponseWriter,
	r *http.Request,
) {
	var req CreateAnimalKeepingProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	project, err := h.service.CreateAnimalKeepingProject(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		h.writeCreateError(w, err)
		return
	}

	core.Created(w, ToProjectResponse(project))
}

func (h *Handler) writeCreateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrBusinessRule),
		errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, err.Error())
	case errors.Is(err, core.ErrNotFound):
		core.BadRequest(w, "referenced plot does not exist")
	default:
		core.InternalServerError(w, err)
	}
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.ListProjects(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, projects)
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "project")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToProjectResponse(project))
}

func (h *Handler) ListProjectsByFarm(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.ListProjectsByFarm(
		r.Context(),
		chi.URLParam(r, "farmID"),
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToProjectResponseList(projects))
}

func (h *Handler) CreatePlantingEvent(w http.ResponseWriter, r *http.Request) {
	var req CreatePlantingEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	event, err := h.service.CreatePlantingEvent(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "project")
		case errors.Is(err, core.ErrBusinessRule),
			errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, err.Error())
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, ToPlantingEventResponse(event))
}

func (h *Handler) ListPlantingEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListPlantingEvents(
		r.Context(),
		chi.URLParam(r, "projectID"),
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPlantingEventResponseList(events))
}
