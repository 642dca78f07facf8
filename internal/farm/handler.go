// AngelaMos | 2026
// handler.go

package farm

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
	r.Route("/farms", func(r chi.Router) {
		r.Post("/", h.CreateFarm)
		r.Get("/owner/{ownerID}", h.ListFarmsByOwner)

		r.Route("/plots", func(r chi.Router) {
			r.Post("/", h.CreatePlot)
			r.Get("/{id}", h.GetPlot)
			r.Patch("/{id}", h.UpdatePlot)
			r.Delete("/{id}", h.DeletePlot)
		})

		r.Get("/{id}", h.GetFarm)
		r.Patch("/{id}", h.UpdateFarm)
		r.Get("/{id}/plots", h.ListPlotsByFarm)
	})
}

func (h *Handler) CreateFarm(w http.ResponseWriter, r *http.Request) {
	var req CreateFarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	farm, err := h.service.CreateFarm(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, err.Error())
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToFarmResponse(farm))
}

func (h *Handler) GetFarm(w http.ResponseWriter, r *http.Request) {
	farm, err := h.service.GetFarm(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "farm")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToFarmResponse(farm))
}

func (h *Handler) ListFarmsByOwner(w http.ResponseWriter, r *http.Request) {
	farms, err := h.service.ListFarmsByOwner(
		r.Context(),
		chi.URLParam(r, "ownerID"),
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToFarmResponseList(farms))
}

func (h *Handler) UpdateFarm(w http.ResponseWriter, r *http.Request) {
	var req UpdateFarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	farm, err := h.service.UpdateFarm(
		r.Context(),
		chi.URLParam(r, "id"),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "farm")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToFarmResponse(farm))
}

func (h *Handler) CreatePlot(w http.ResponseWriter, r *http.Request) {
	var req CreatePlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	plot, err := h.service.CreatePlot(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.BadRequest(w, "farm does not exist")
		case errors.Is(err, core.ErrDuplicateKey):
			core.BadRequest(w, "plot code already exists for this farm")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, err.Error())
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, ToPlotResponse(plot))
}

func (h *Handler) GetPlot(w http.ResponseWriter, r *http.Request) {
	plot, err := h.service.GetPlot(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "plot")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPlotResponse(plot))
}

func (h *Handler) ListPlotsByFarm(w http.ResponseWriter, r *http.Request) {
	plots, err := h.service.ListPlotsByFarm(
		r.Context(),
		chi.URLParam(r, "id"),
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPlotResponseList(plots))
}

func (h *Handler) UpdatePlot(w http.ResponseWriter, r *http.Request) {
	var req UpdatePlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	plot, err := h.service.UpdatePlot(
		r.Context(),
		chi.URLParam(r, "id"),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "plot")
		case errors.Is(err, core.ErrDuplicateKey):
			core.BadRequest(w, "plot code already exists for this farm")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToPlotResponse(plot))
}

func (h *Handler) DeletePlot(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeletePlot(
		r.Context(),
		chi.URLParam(r, "id"),
		middleware.GetUserID(r.Context()),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "plot")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}
