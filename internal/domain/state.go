package domain

import "sort"

// State is the whole session dataset. Writers never mutate a State in place;
// they build a new one and swap it.
type State struct {
	Users       map[string]User      `json:"users"`
	Inventories map[string]Inventory `json:"inventories"`
	Weapons     map[string]Weapon    `json:"weapons"`
	Shop        Shop                 `json:"shop"`
}

// NewState returns an empty state with initialized maps
func NewState() State {
	return State{
		Users:       make(map[string]User),
		Inventories: make(map[string]Inventory),
		Weapons:     make(map[string]Weapon),
	}
}

// Clone deep-copies the state
func (s State) Clone() State {
	out := NewState()
	for id, u := range s.Users {
		out.Users[id] = u
	}
	for id, inv := range s.Inventories {
		out.Inventories[id] = inv.Clone()
	}
	for id, w := range s.Weapons {
		out.Weapons[id] = w
	}
	out.Shop = s.Shop.Clone()
	return out
}

// SortedInventories returns inventories ordered by name then id
func (s State) SortedInventories() []Inventory {
	out := make([]Inventory, 0, len(s.Inventories))
	for _, inv := range s.Inventories {
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// SortedWeapons returns the catalog ordered by name then id
func (s State) SortedWeapons() []Weapon {
	out := make([]Weapon, 0, len(s.Weapons))
	for _, w := range s.Weapons {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// SortedUsers returns users ordered by id
func (s State) SortedUsers() []User {
	out := make([]User, 0, len(s.Users))
	for _, u := range s.Users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
