// AngelaMos | 2026
// dto.go

package finance

import (
	"time"
)

type CreateTransactionRequest struct {
	FarmID          string    `json:"farm_id"          validate:"required,uuid"`
	ProjectID       *string   `json:"project_id"       validate:"omitempty,uuid"`
	ItemID          *string   `json:"item_id"          validate:"omitempty,uuid"`
	TransactionType string    `json:"transaction_type" validate:"required,oneof=PURCHASE SALE EXPENSE INCOME"`
	Amount          float64   `json:"amount"           validate:"required"`
	Currency        *string   `json:"currency"         validate:"omitempty,len=3"`
	Quantity        *float64  `json:"quantity"         validate:"omitempty,gt=0"`
	Date            time.Time `json:"date"             validate:"required"`
	Notes           *string   `json:"notes"            validate:"omitempty,max=2000"`
	RelatedPartyID  *string   `json:"related_party_id" validate:"omitempty,uuid"`
}

type TransactionResponse struct {
	ID              string    `json:"id"`
	FarmID          string    `json:"farm_id"`
	ProjectID       *string   `json:"project_id,omitempty"`
	ItemID          *string   `json:"item_id,omitempty"`
	TransactionType string    `json:"transaction_type"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	Quantity        *float64  `json:"quantity,omitempty"`
	Date            time.Time `json:"date"`
	Notes           *string   `json:"notes,omitempty"`
	RelatedPartyID  *string   `json:"related_party_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Version         int       `json:"version"`
}

type CreateInventoryItemRequest struct {
	FarmID       string   `json:"farm_id"       validate:"required,uuid"`
	Name         string   `json:"name"          validate:"required,min=1,max=255"`
	SKU          string   `json:"sku"           validate:"required,min=1,max=64"`
	Quantity     float64  `json:"quantity"      validate:"gte=0"`
	Unit         string   `json:"unit"          validate:"required,min=1,max=32"`
	UnitCost     float64  `json:"unit_cost"     validate:"required,gt=0"`
	Currency     *string  `json:"currency"      validate:"omitempty,len=3"`
	SupplierID   *string  `json:"supplier_id"   validate:"omitempty,uuid"`
	ReorderLevel *float64 `json:"reorder_level" validate:"omitempty,gte=0"`
}

type InventoryItemResponse struct {
	ID           string    `json:"id"`
	FarmID       string    `json:"farm_id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	UnitCost     float64   `json:"unit_cost"`
	Currency     string    `json:"currency"`
	SupplierID   *string   `json:"supplier_id,omitempty"`
	ReorderLevel *float64  `json:"reorder_level,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Version      int       `json:"version"`
}

func ToTransactionResponse(t *Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		FarmID:          t.FarmID,
		ProjectID:       t.ProjectID,
		ItemID:          t.ItemID,
		TransactionType: t.TransactionType,
		Amount:          t.Amount,
		Currency:        t.Currency,
		Quantity:        t.Quantity,
		Date:            t.Date,
		Notes:           t.Notes,
		RelatedPartyID:  t.RelatedPartyID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		Version:         t.Version,
	}
}

func ToTransactionResponseList(txs []Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, ToTransactionResponse(&txs[i]))
	}
	return responses
}

func ToInventoryItemResponse(item *InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:           item.ID,
		FarmID:       item.FarmID,
		Name:         item.Name,
		SKU:          item.SKU,
		Quantity:     item.Quantity,
		Unit:         item.Unit,
		UnitCost:     item.UnitCost,
		Currency:     item.Currency,
		SupplierID:   item.SupplierID,
		ReorderLevel: item.ReorderLevel,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
		Version:      item.Version,
	}
}

func ToInventoryItemResponseList(items []InventoryItem) []InventoryItemResponse {
	responses := make([]InventoryItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToInventoryItemResponse(&items[i]))
	}
	return responses
}
