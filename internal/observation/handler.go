// AngelaMos | 2026
// handler.go

package observation

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
	r.Route("/observations", func(r chi.Router) {
		r.Post("/soil", h.CreateSoilAnalysis)
		r.Get("/soil/plot/{plotID}", h.ListSoilAnalysesByPlot)
		r.Post("/weather", h.CreateWeatherObservation)
		r.Get("/weather/farm/{farmID}", h.ListWeatherByFarm)
		r.Post("/seasons", h.CreateSeason)
		r.Get("/seasons/farm/{farmID}", h.ListSeasonsByFarm)
	})
}

func (h *Handler) CreateSoilAnalysis(w http.ResponseWriter, r *http.Request) {
	var req CreateSoilAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	analysis, err := h.service.CreateSoilAnalysis(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		h.writeCreateError(w, err, "plot does not exist")
		return
	}

	core.Created(w, ToSoilAnalysisResponse(analysis))
}

func (h *Handler) ListSoilAnalysesByPlot(
	w http.ResponseWriter,
	r *http.Request,
) {
	analyses, err := h.service.ListSoilAnalysesByPlot(
		r.Context(),
		chi.URLParam(r, "plotID"),
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToSoilAnalysisResponseList(analyses))
}

func (h *Handler) CreateWeatherObservation(
	w http.ResponseWriter,
	r *http.Request,
) {
	var req CreateWeatherObservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	observation, err := h.service.CreateWeatherObservation(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		h.writeCreateError(w, err, "farm does not exist")
		return
	}

	core.Created(w, ToWeatherObservationResponse(observation))
}

func (h *Handler) ListWeatherByFarm(w http.ResponseWriter, r *http.Request) {
	observations, err := h.service.ListWeatherByFarm(
		r.Context(),
		chi.URLParam(r, "farmID"),
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToWeatherObservationResponseList(observations))
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	var req CreateSeasonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	season, err := h.service.CreateSeason(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		h.writeCreateError(w, err, "farm does not exist")
		return
	}

	core.Created(w, ToSeasonResponse(season))
}

func (h *Handler) ListSeasonsByFarm(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.service.ListSeasonsByFarm(
		r.Context(),
		chi.URLParam(r, "farmID"),
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToSeasonResponseList(seasons))
}

func (h *Handler) writeCreateError(
	w http.ResponseWriter,
	err error,
	missingRef string,
) {
	switch {
	case errors.Is(err, core.ErrInvalidInput),
		errors.Is(err, core.ErrBusinessRule):
		core.BadRequest(w, err.Error())
	case errors.Is(err, core.ErrNotFound):
		core.BadRequest(w, missingRef)
	default:
		core.InternalServerError(w, err)
	}
}
