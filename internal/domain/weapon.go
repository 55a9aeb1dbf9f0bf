package domain

// Weapon is a global catalog entry owned by no inventory.
// ImageURL holds a public URL, or a data URL when running offline.
type Weapon struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Damage      int    `json:"damage" yaml:"damage"`
	MagCapacity int    `json:"mag_capacity" yaml:"mag_capacity"`
	AmmoType    string `json:"ammo_type" yaml:"ammo_type"`
	Price       int    `json:"price" yaml:"price"`
	ImageURL    string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}

// Snapshot builds fully loaded item metadata from the catalog entry
func (w Weapon) Snapshot() *WeaponMetadata {
	return &WeaponMetadata{
		WeaponID:    w.ID,
		MagCurrent:  w.MagCapacity,
		MagCapacity: w.MagCapacity,
		AmmoType:    w.AmmoType,
		Damage:      w.Damage,
		Image:       w.ImageURL,
	}
}

// NewWeapon carries the fields of a catalog entry being created
type NewWeapon struct {
	Name        string
	Damage      int
	MagCapacity int
	AmmoType    string
	Price       int
	ImageURL    string
}

// Stand is a shop display holding at most Slots weapons
type Stand struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Slots     int      `json:"slots" yaml:"slots"`
	WeaponIDs []string `json:"weapon_ids" yaml:"weapon_ids"`
}

// Has reports whether the weapon is on the stand
func (s Stand) Has(weaponID string) bool {
	for _, id := range s.WeaponIDs {
		if id == weaponID {
			return true
		}
	}
	return false
}

// Clone copies the stand
func (s Stand) Clone() Stand {
	out := s
	out.WeaponIDs = append([]string(nil), s.WeaponIDs...)
	return out
}

// Shop is the ordered sequence of stands
type Shop struct {
	Stands []Stand `json:"stands"`
}

// StandIndex returns the position of the stand, or -1
func (s Shop) StandIndex(standID string) int {
	for i, st := range s.Stands {
		if st.ID == standID {
			return i
		}
	}
	return -1
}

// Assigned returns the set of weapon ids placed on any stand
func (s Shop) Assigned() map[string]bool {
	out := make(map[string]bool)
	for _, st := range s.Stands {
		for _, id := range st.WeaponIDs {
			out[id] = true
		}
	}
	return out
}

// Clone copies every stand
func (s Shop) Clone() Shop {
	out := Shop{Stands: make([]Stand, len(s.Stands))}
	for i, st := range s.Stands {
		out.Stands[i] = st.Clone()
	}
	return out
}

// WeaponForm is a create-weapon request as clients send it. Omitted fields take the form defaults.
type WeaponForm struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Damage      *int    `json:"damage,omitempty"`
	MagCapacity *int    `json:"mag_capacity,omitempty" validate:"omitempty,min=0"`
	AmmoType    *string `json:"ammo_type,omitempty" validate:"omitempty,max=50"`
	Price       *int    `json:"price,omitempty" validate:"omitempty,min=0"`
}

// NewWeapon fills in the defaults for omitted fields
func (f WeaponForm) NewWeapon() NewWeapon {
	out := NewWeapon{
		Name:        f.Name,
		Damage:      DefaultWeaponDamage,
		MagCapacity: DefaultWeaponMagCapacity,
		AmmoType:    DefaultWeaponAmmoType,
		Price:       DefaultWeaponPrice,
	}
	if f.Damage != nil {
		out.Damage = *f.Damage
	}
	if f.MagCapacity != nil {
		out.MagCapacity = *f.MagCapacity
	}
	if f.AmmoType != nil {
		out.AmmoType = *f.AmmoType
	}
	if f.Price != nil {
		out.Price = *f.Price
	}
	return out
}
