// AngelaMos | 2026
// entity.go

package finance

import (
	"time"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

const (
	TypePurchase = "PURCHASE"
	TypeSale     = "SALE"
	TypeExpense  = "EXPENSE"
	TypeIncome   = "INCOME"
)

type Transaction struct {
	core.Record

	FarmID          string    `db:"farm_id"`
	ProjectID       *string   `db:"project_id"`
	ItemID          *string   `db:"item_id"`
	TransactionType string    `db:"transaction_type"`
	Amount          float64   `db:"amount"`
	Currency        string    `db:"currency"`
	Quantity        *float64  `db:"quantity"`
	Date            time.Time `db:"date"`
	Notes           *string   `db:"notes"`
	RelatedPartyID  *string   `db:"related_party_id"`
}

type InventoryItem struct {
	core.Record

	FarmID       string   `db:"farm_id"`
	Name         string   `db:"name"`
	SKU          string   `db:"sku"`
	Quantity     float64  `db:"quantity"`
	Unit         string   `db:"unit"`
	UnitCost     float64  `db:"unit_cost"`
	Currency     string   `db:"currency"`
	SupplierID   *string  `db:"supplier_id"`
	ReorderLevel *float64 `db:"reorder_level"`
}
