// AngelaMos | 2026
// repository.go

package finance

import (
	"context"
	"fmt"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

const transactionColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version,
	       farm_id, project_id, item_id, transaction_type, amount, currency,
	       quantity, date, notes, related_party_id`

const inventoryColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version,
	       farm_id, name, sku, quantity, unit, unit_cost, currency,
	       supplier_id, reorder_level`

type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactionsByFarm(
		ctx context.Context,
		farmID string,
	) ([]Transaction, error)

	CreateInventoryItem(ctx context.Context, item *InventoryItem) error
	ListInventoryByFarm(
		ctx context.Context,
		farmID string,
	) ([]InventoryItem, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTransaction(
	ctx context.Context,
	tx *Transaction,
) error {
	query := `
		INSERT INTO transactions (id, farm_id, project_id, item_id,
		                          transaction_type, amount, currency,
		                          quantity, date, notes, related_party_id,
		                          created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at, version`

	err := r.db.GetContext(ctx, tx, query,
		tx.ID,
		tx.FarmID,
		tx.ProjectID,
		tx.ItemID,
		tx.TransactionType,
		tx.Amount,
		tx.Currency,
		tx.Quantity,
		tx.Date,
		tx.Notes,
		tx.RelatedPartyID,
		tx.CreatedByID,
	)
	if err != nil {
		if core.IsForeignKeyViolation(err) {
			return fmt.Errorf("create transaction: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create transaction: %w", err)
	}

	return nil
}

func (r *repository) ListTransactionsByFarm(
	ctx context.Context,
	farmID string,
) ([]Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions
		WHERE farm_id = $1 AND is_deleted = FALSE
		ORDER BY date DESC, created_at DESC`, transactionColumns)

	var txs []Transaction
	if err := r.db.SelectContext(ctx, &txs, query, farmID); err != nil {
		return nil, fmt.Errorf("list transactions by farm: %w", err)
	}

	return txs, nil
}

func (r *repository) CreateInventoryItem(
	ctx context.Context,
	item *InventoryItem,
) error {
	query := `
		INSERT INTO inventory_items (id, farm_id, name, sku, quantity, unit,
		                             unit_cost, currency, supplier_id,
		                             reorder_level, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at, version`

	err := r.db.GetContext(ctx, item, query,
		item.ID,
		item.FarmID,
		item.Name,
		item.SKU,
		item.Quantity,
		item.Unit,
		item.UnitCost,
		item.Currency,
		item.SupplierID,
		item.ReorderLevel,
		item.CreatedByID,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create inventory item: %w", core.ErrDuplicateKey)
		}
		if core.IsForeignKeyViolation(err) {
			return fmt.Errorf("create inventory item: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create inventory item: %w", err)
	}

	return nil
}

func (r *repository) ListInventoryByFarm(
	ctx context.Context,
	farmID string,
) ([]InventoryItem, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM inventory_items
		WHERE farm_id = $1 AND is_deleted = FALSE
		ORDER BY name ASC`, inventoryColumns)

	var items []InventoryItem
	if err := r.db.SelectContext(ctx, &items, query, farmID); err != nil {
		return nil, fmt.Errorf("list inventory by farm: %w", err)
	}

	return items, nil
}
