// AngelaMos | 2026
// service_test.go

package finance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

type stubRepository struct {
	transactions []*Transaction
	items        []*InventoryItem
	createErr    error
}

func (s *stubRepository) CreateTransaction(
	_ context.Context,
	tx *Transaction,
) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.transactions = append(s.transactions, tx)
	return nil
}

func (s *stubRepository) ListTransactionsByFarm(
	_ context.Context,
	_ string,
) ([]Transaction, error) {
	out := make([]Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		out = append(out, *tx)
	}
	return out, nil
}

func (s *stubRepository) CreateInventoryItem(
	_ context.Context,
	item *InventoryItem,
) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.items = append(s.items, item)
	return nil
}

func (s *stubRepository) ListInventoryByFarm(
	_ context.Context,
	_ string,
) ([]InventoryItem, error) {
	out := make([]InventoryItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, *item)
	}
	return out, nil
}

func newTransactionRequest(txType string, amount float64) CreateTransactionRequest {
	return CreateTransactionRequest{
		FarmID:          "0b54c9b3-5f6a-4a3c-93a1-ffb6f9c9a111",
		TransactionType: txType,
		Amount:          amount,
		Date:            time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateTransactionExpenseStoredNegative(t *testing.T) {
	repo := &stubRepository{}
	svc := NewService(repo)

	tx, err := svc.CreateTransaction(
		context.Background(),
		"actor-1",
		newTransactionRequest(TypeExpense, 250),
	)
	require.NoError(t, err)
	assert.Equal(t, -250.0, tx.Amount)

	// A caller that already sent a negative expense gets the same result.
	tx, err = svc.CreateTransaction(
		context.Background(),
		"actor-1",
		newTransactionRequest(TypePurchase, -80),
	)
	require.NoError(t, err)
	assert.Equal(t, -80.0, tx.Amount)
}

func TestCreateTransactionIncomeKeepsSign(t *testing.T) {
	repo := &stubRepository{}
	svc := NewService(repo)

	tx, err := svc.CreateTransaction(
		context.Background(),
		"actor-1",
		newTransactionRequest(TypeSale, 1200),
	)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, tx.Amount)
}

func TestCreateTransactionNegativeIncomeRejected(t *testing.T) {
	svc := NewService(&stubRepository{})

	_, err := svc.CreateTransaction(
		context.Background(),
		"actor-1",
		newTransactionRequest(TypeIncome, -10),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrBusinessRule)
}

func TestCreateTransactionZeroAmountRejected(t *testing.T) {
	svc := NewService(&stubRepository{})

	_, err := svc.CreateTransaction(
		context.Background(),
		"actor-1",
		newTransactionRequest(TypeSale, 0),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrBusinessRule)
}

func TestCreateTransactionUnknownTypeRejected(t *testing.T) {
	svc := NewService(&stubRepository{})

	_, err := svc.CreateTransaction(
		context.Background(),
		"actor-1",
		newTransactionRequest("REFUND", 10),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestCreateTransactionDefaultsAndAudit(t *testing.T) {
	repo := &stubRepository{}
	svc := NewService(repo)

	tx, err := svc.CreateTransaction(
		context.Background(),
		"actor-1",
		newTransactionRequest(TypeSale, 50),
	)
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, "USD", tx.Currency)
	require.NotNil(t, tx.CreatedByID)
	assert.Equal(t, "actor-1", *tx.CreatedByID)
}

func TestCreateInventoryItemNormalizesSKU(t *testing.T) {
	repo := &stubRepository{}
	svc := NewService(repo)

	currency := "kes"
	item, err := svc.CreateInventoryItem(
		context.Background(),
		"actor-1",
		CreateInventoryItemRequest{
			FarmID:   "0b54c9b3-5f6a-4a3c-93a1-ffb6f9c9a111",
			Name:     "Maize seed",
			SKU:      " seed-mz-01 ",
			Quantity: 40,
			Unit:     "kg",
			UnitCost: 3.5,
			Currency: &currency,
		},
	)
	require.NoError(t, err)
	assert.Equal(t, "SEED-MZ-01", item.SKU)
	assert.Equal(t, "KES", item.Currency)
}
