package command

import (
	"encoding/json"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
)

// Command is one client request on the WebSocket transport.
// The reply carries the same ID so clients can match it.
type Command struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Actor   string          `json:"actor,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Reply is sent for every command and for every relayed event
type Reply struct {
	Kind    string      `json:"kind"`
	ID      string      `json:"id,omitempty"`
	Type    string      `json:"type"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
	Version uint64      `json:"version,omitempty"`
}

// Error is the error body of a failed command
type Error struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Payloads. Field names follow the JSON used by the HTTP API.

type inventoryPayload struct {
	InventoryID string `json:"inventory_id" validate:"required"`
}

type renameFixedCategoryPayload struct {
	InventoryID string `json:"inventory_id" validate:"required"`
	Index       int    `json:"index"`
	Name        string `json:"name" validate:"required,max=100"`
}

type createCustomCategoryPayload struct {
	InventoryID string `json:"inventory_id" validate:"required"`
	FixedID     string `json:"fixed_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
}

type renameCustomCategoryPayload struct {
	InventoryID string `json:"inventory_id" validate:"required"`
	CategoryID  string `json:"category_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
}

type deleteCustomCategoryPayload struct {
	InventoryID string `json:"inventory_id" validate:"required"`
	CategoryID  string `json:"category_id" validate:"required"`
	Confirm     bool   `json:"confirm"`
}

type createItemPayload struct {
	InventoryID string `json:"inventory_id" validate:"required"`
	FixedID     string `json:"fixed_id" validate:"required"`
	CategoryID  string `json:"category_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	Qty         int    `json:"qty"`
	Desc        string `json:"desc" validate:"max=1000"`
}

type editItemPayload struct {
	InventoryID string           `json:"inventory_id" validate:"required"`
	ItemID      string           `json:"item_id" validate:"required"`
	Patch       domain.ItemPatch `json:"patch"`
}

type deleteItemPayload struct {
	InventoryID string `json:"inventory_id" validate:"required"`
	CategoryID  string `json:"category_id" validate:"required"`
	ItemID      string `json:"item_id" validate:"required"`
}

type moveItemPayload struct {
	InventoryID    string `json:"inventory_id" validate:"required"`
	FromCategoryID string `json:"from_category_id" validate:"required"`
	ToCategoryID   string `json:"to_category_id" validate:"required"`
	ItemID         string `json:"item_id" validate:"required"`
}

type transferItemPayload struct {
	SourceID   string `json:"source_id" validate:"required"`
	TargetID   string `json:"target_id" validate:"required,nefield=SourceID"`
	FixedID    string `json:"fixed_id" validate:"required"`
	CategoryID string `json:"category_id" validate:"required"`
	ItemID     string `json:"item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"min=1"`
}

type setMoneyPayload struct {
	InventoryID string `json:"inventory_id" validate:"required"`
	Amount      int    `json:"amount" validate:"min=0"`
}

type setMetaPayload struct {
	InventoryID string `json:"inventory_id" validate:"required"`
	Status      string `json:"status" validate:"max=1000"`
	Notes       string `json:"notes" validate:"max=10000"`
}

type weaponItemPayload struct {
	InventoryID string `json:"inventory_id" validate:"required"`
	ItemID      string `json:"item_id" validate:"required"`
}

// imagePayload is a base64 image, optionally a data URL
type imagePayload struct {
	FileName string `json:"file_name" validate:"required,max=255"`
	Data     string `json:"data" validate:"required"`
}

type createWeaponPayload struct {
	domain.WeaponForm
	Image *imagePayload `json:"image,omitempty"`
}

type deleteWeaponPayload struct {
	WeaponID string `json:"weapon_id" validate:"required"`
	Confirm  bool   `json:"confirm"`
}

type standWeaponPayload struct {
	StandID  string `json:"stand_id" validate:"required"`
	WeaponID string `json:"weapon_id" validate:"required"`
}

type standPayload struct {
	StandID string `json:"stand_id" validate:"required"`
}

type purchasePayload struct {
	StandID  string `json:"stand_id" validate:"required"`
	WeaponID string `json:"weapon_id" validate:"required"`
	BuyerID  string `json:"buyer_id" validate:"required"`
}
