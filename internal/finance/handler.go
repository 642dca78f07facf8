// AngelaMos | 2026
// handler.go

package finance

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
	r.Route("/finance", func(r chi.Router) {
		r.Post("/transactions", h.CreateTransaction)
		r.Get("/transactions/farm/{farmID}", h.ListTransactionsByFarm)
		r.Post("/inventory", h.CreateInventoryItem)
		r.Get("/inventory/farm/{farmID}", h.ListInventoryByFarm)
	})
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	tx, err := h.service.CreateTransaction(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrBusinessRule),
			errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, err.Error())
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, ToTransactionResponse(tx))
}

func (h *Handler) ListTransactionsByFarm(
	w http.ResponseWriter,
	r *http.Request,
) {
	txs, err := h.service.ListTransactionsByFarm(
		r.Context(),
		chi.URLParam(r, "farmID"),
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToTransactionResponseList(txs))
}

func (h *Handler) CreateInventoryItem(w http.ResponseWriter, r *http.Request) {
	var req CreateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	item, err := h.service.CreateInventoryItem(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrDuplicateKey):
			core.BadRequest(w, "sku already exists")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, err.Error())
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, ToInventoryItemResponse(item))
}

func (h *Handler) ListInventoryByFarm(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListInventoryByFarm(
		r.Context(),
		chi.URLParam(r, "farmID"),
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToInventoryItemResponseList(items))
}
