package repository

import "github.com/osse101/Stashkeeper_Go/internal/domain"

// Persisted item type tags
const (
	ItemTypePlain  = "item"
	ItemTypeWeapon = "weapon"
)

// InventoryRow mirrors the inventories table. A nil OwnerUserID marks a shared inventory.
type InventoryRow struct {
	ID              string
	Name            string
	OwnerUserID     *string
	Type            string
	Wallpaper       string
	Money           int
	FixedCategories []domain.FixedCategory
	Status          string
	Notes           string
}

// CategoryRow mirrors the categories table. ParentFixed holds the fixed category id.
type CategoryRow struct {
	ID          string
	InventoryID string
	ParentFixed string
	Name        string
	Position    int
}

// ItemMetadata is the JSON document stored in items.metadata
type ItemMetadata struct {
	Description string `json:"description,omitempty"`
	WeaponID    string `json:"weapon_id,omitempty"`
	MagCurrent  *int   `json:"magCurrent,omitempty"`
	MagCapacity *int   `json:"magCapacity,omitempty"`
	AmmoType    string `json:"ammoType,omitempty"`
	Damage      *int   `json:"damage,omitempty"`
	Image       string `json:"image,omitempty"`
}

// ItemRow mirrors the items table
type ItemRow struct {
	ID         string
	CategoryID string
	Name       string
	Qty        int
	Type       string
	Metadata   ItemMetadata
	Position   int
}

// StandRow mirrors the stands table
type StandRow struct {
	ID       string
	Name     string
	Slots    int
	Position int
}

// StandWeaponRow mirrors the stand_weapons table
type StandWeaponRow struct {
	StandID  string
	WeaponID string
	Position int
}

// Rows is the full normalized dataset returned by LoadAll
type Rows struct {
	Users        []domain.User
	Inventories  []InventoryRow
	Categories   []CategoryRow
	Items        []ItemRow
	Weapons      []domain.Weapon
	Stands       []StandRow
	StandWeapons []StandWeaponRow
}

// IsEmpty reports whether the dataset holds no inventories and no stands
func (r Rows) IsEmpty() bool {
	return len(r.Inventories) == 0 && len(r.Stands) == 0 && len(r.Users) == 0
}
