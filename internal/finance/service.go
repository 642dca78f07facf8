// AngelaMos | 2026
// service.go

package finance

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateTransaction normalizes the amount sign by type: expenses and
// purchases are stored negative regardless of input sign, while sales
// and income reject negative amounts outright.
func (s *Service) CreateTransaction(
	ctx context.Context,
	actorID string,
	req CreateTransactionRequest,
) (*Transaction, error) {
	amount, err := normalizeAmount(req.TransactionType, req.Amount)
	if err != nil {
		return nil, err
	}

	currency := "USD"
	if req.Currency != nil {
		currency = core.NormalizeCode(*req.Currency)
	}

	tx := &Transaction{
		Record:          core.Record{ID: uuid.New().String()},
		FarmID:          req.FarmID,
		ProjectID:       req.ProjectID,
		ItemID:          req.ItemID,
		TransactionType: req.TransactionType,
		Amount:          amount,
		Currency:        currency,
		Quantity:        req.Quantity,
		Date:            req.Date,
		Notes:           req.Notes,
		RelatedPartyID:  req.RelatedPartyID,
	}

	if actorID != "" {
		tx.CreatedByID = &actorID
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func normalizeAmount(transactionType string, amount float64) (float64, error) {
	if amount == 0 {
		return 0, fmt.Errorf(
			"amount must be non-zero: %w",
			core.ErrBusinessRule,
		)
	}

	switch transactionType {
	case TypeExpense, TypePurchase:
		return -math.Abs(amount), nil
	case TypeIncome, TypeSale:
		if amount < 0 {
			return 0, fmt.Errorf(
				"%s amount must be positive: %w",
				transactionType,
				core.ErrBusinessRule,
			)
		}
		return amount, nil
	default:
		return 0, fmt.Errorf(
			"unknown transaction type %q: %w",
			transactionType,
			core.ErrInvalidInput,
		)
	}
}

func (s *Service) ListTransactionsByFarm(
	ctx context.Context,
	farmID string,
) ([]Transaction, error) {
	return s.repo.ListTransactionsByFarm(ctx, farmID)
}

func (s *Service) CreateInventoryItem(
	ctx context.Context,
	actorID string,
	req CreateInventoryItemRequest,
) (*InventoryItem, error) {
	currency := "USD"
	if req.Currency != nil {
		currency = core.NormalizeCode(*req.Currency)
	}

	item := &InventoryItem{
		Record:       core.Record{ID: uuid.New().String()},
		FarmID:       req.FarmID,
		Name:         req.Name,
		SKU:          core.NormalizeCode(req.SKU),
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		UnitCost:     req.UnitCost,
		Currency:     currency,
		SupplierID:   req.SupplierID,
		ReorderLevel: req.ReorderLevel,
	}

	if actorID != "" {
		item.CreatedByID = &actorID
	}

	if err := s.repo.CreateInventoryItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) ListInventoryByFarm(
	ctx context.Context,
	farmID string,
) ([]InventoryItem, error) {
	return s.repo.ListInventoryByFarm(ctx, farmID)
}
