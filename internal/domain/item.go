package domain

// ItemKind is the persisted discriminator of an item
type ItemKind string

const (
	ItemKindPlain  ItemKind = "item"
	ItemKindWeapon ItemKind = "weapon"
)

// WeaponMetadata is a snapshot of catalog attributes taken at acquisition time.
// Later catalog edits do not touch it.
type WeaponMetadata struct {
	WeaponID    string `json:"weapon_id" yaml:"weapon_id"`
	MagCurrent  int    `json:"mag_current" yaml:"mag_current"`
	MagCapacity int    `json:"mag_capacity" yaml:"mag_capacity"`
	AmmoType    string `json:"ammo_type" yaml:"ammo_type"`
	Damage      int    `json:"damage" yaml:"damage"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty"`
}

// Item is either plain or a weapon. Weapon is nil for plain items.
type Item struct {
	ID     string          `json:"id" yaml:"id"`
	Name   string          `json:"name" yaml:"name"`
	Qty    int             `json:"qty" yaml:"qty"`
	Desc   string          `json:"desc" yaml:"desc"`
	Weapon *WeaponMetadata `json:"weapon,omitempty" yaml:"weapon,omitempty"`
}

// Kind returns the variant tag
func (i Item) Kind() ItemKind {
	if i.Weapon != nil {
		return ItemKindWeapon
	}
	return ItemKindPlain
}

// WeaponID returns the catalog id for weapon items, or "" for plain items
func (i Item) WeaponID() string {
	if i.Weapon == nil {
		return ""
	}
	return i.Weapon.WeaponID
}

// Clone copies the item including its weapon snapshot
func (i Item) Clone() Item {
	out := i
	if i.Weapon != nil {
		w := *i.Weapon
		out.Weapon = &w
	}
	return out
}

// ItemPatch carries optional edits. Nil fields are left untouched.
type ItemPatch struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Qty         *int    `json:"qty,omitempty" validate:"omitempty,min=0"`
	Desc        *string `json:"desc,omitempty" validate:"omitempty,max=1000"`
	Damage      *int    `json:"damage,omitempty"`
	MagCapacity *int    `json:"mag_capacity,omitempty" validate:"omitempty,min=0"`
	MagCurrent  *int    `json:"mag_current,omitempty" validate:"omitempty,min=0"`
	AmmoType    *string `json:"ammo_type,omitempty" validate:"omitempty,max=50"`
}

// TouchesWeapon reports whether the patch edits weapon-only fields
func (p ItemPatch) TouchesWeapon() bool {
	return p.Damage != nil || p.MagCapacity != nil || p.MagCurrent != nil || p.AmmoType != nil
}

// NewItem carries the fields of an item being created
type NewItem struct {
	Name string
	Qty  int
	Desc string
}
