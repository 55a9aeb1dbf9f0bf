package fixtures

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/normalize"
	"github.com/osse101/Stashkeeper_Go/internal/validation"
)

//go:embed seed.yaml
var defaultSeed []byte

var schemas = validation.NewSchemaValidator()

// Id formats for seeded categories and items. Fixed ids follow normalize.FixedIDFmt.
const (
	categoryIDFmt = "%s-cat-%d"
	itemIDFmt     = "%s-item-%d"
)

// Load reads a seed file, or the embedded default when path is empty
func Load(path string) (domain.State, error) {
	data := defaultSeed
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return domain.State{}, fmt.Errorf("failed to read seed file: %w", err)
		}
		if err := schemas.ValidateYAML(data, validation.SchemaSeed); err != nil {
			return domain.State{}, fmt.Errorf("seed file %s: %w", path, err)
		}
	}

	file, err := Parse(data)
	if err != nil {
		return domain.State{}, err
	}
	return file.ToState()
}

// Default returns the embedded seed as state
func Default() (domain.State, error) {
	return Load("")
}

// Parse decodes seed YAML
func Parse(data []byte) (File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return file, nil
}

// ToState validates the seed and builds a state with deterministic ids
func (f File) ToState() (domain.State, error) {
	state := domain.NewState()

	for _, u := range f.Users {
		if u.ID == "" {
			return domain.State{}, fmt.Errorf("%w: user without id", domain.ErrValidation)
		}
		if _, dup := state.Users[u.ID]; dup {
			return domain.State{}, fmt.Errorf("%w: duplicate user %s", domain.ErrValidation, u.ID)
		}
		if u.Role == "" {
			u.Role = domain.RolePlayer
		}
		state.Users[u.ID] = u
	}

	for _, w := range f.Weapons {
		if w.ID == "" {
			return domain.State{}, fmt.Errorf("%w: weapon without id", domain.ErrValidation)
		}
		state.Weapons[w.ID] = w
	}

	for _, src := range f.Inventories {
		inv, err := src.toInventory(state)
		if err != nil {
			return domain.State{}, err
		}
		if _, dup := state.Inventories[inv.ID]; dup {
			return domain.State{}, fmt.Errorf("%w: duplicate inventory %s", domain.ErrValidation, inv.ID)
		}
		state.Inventories[inv.ID] = inv
	}

	for _, st := range f.Stands {
		if state.Shop.StandIndex(st.ID) >= 0 {
			return domain.State{}, fmt.Errorf("%w: duplicate stand %s", domain.ErrValidation, st.ID)
		}
		stand := domain.Stand{ID: st.ID, Name: st.Name, Slots: st.Slots, WeaponIDs: []string{}}
		for _, wid := range st.Weapons {
			if _, ok := state.Weapons[wid]; !ok {
				return domain.State{}, fmt.Errorf("%w: stand %s references unknown weapon %s", domain.ErrValidation, st.ID, wid)
			}
			if !stand.Has(wid) {
				stand.WeaponIDs = append(stand.WeaponIDs, wid)
			}
		}
		state.Shop.Stands = append(state.Shop.Stands, stand)
	}

	return state, nil
}

func (src Inventory) toInventory(state domain.State) (domain.Inventory, error) {
	if src.ID == "" {
		return domain.Inventory{}, fmt.Errorf("%w: inventory without id", domain.ErrValidation)
	}
	if src.Owner != "" {
		if _, ok := state.Users[src.Owner]; !ok {
			return domain.Inventory{}, fmt.Errorf("%w: inventory %s owned by unknown user %s", domain.ErrValidation, src.ID, src.Owner)
		}
	}

	inv := domain.Inventory{
		ID:        src.ID,
		Name:      src.Name,
		OwnerID:   src.Owner,
		Type:      domain.InventoryType(src.Type),
		Wallpaper: src.Wallpaper,
		Money:     src.Money,
		Custom:    make(map[string][]domain.CustomCategory),
		Meta:      domain.Meta{Status: src.Status, Notes: src.Notes},
	}
	if inv.Type == "" {
		inv.Type = domain.InventoryCharacter
	}
	if inv.Money < 0 {
		return domain.Inventory{}, fmt.Errorf("%w: inventory %s has negative money", domain.ErrValidation, src.ID)
	}

	names := src.Fixed
	if len(names) == 0 {
		names = domain.DefaultFixedCategories
	}
	byName := make(map[string]string, len(names))
	for i, name := range names {
		id := fmt.Sprintf(normalize.FixedIDFmt, src.ID, i)
		inv.FixedCategories = append(inv.FixedCategories, domain.FixedCategory{ID: id, Name: name})
		byName[name] = id
	}

	catSeq, itemSeq := 0, 0
	// Walk the fixed list, not the map, so ids come out in a stable order
	for _, fc := range inv.FixedCategories {
		cats, ok := src.Categories[fc.Name]
		if !ok {
			continue
		}
		for _, c := range cats {
			catSeq++
			cat := domain.CustomCategory{
				ID:    fmt.Sprintf(categoryIDFmt, src.ID, catSeq),
				Name:  c.Name,
				Items: []domain.Item{},
			}
			for _, it := range c.Items {
				itemSeq++
				qty := it.Qty
				if qty <= 0 {
					qty = domain.DefaultItemQty
				}
				item := domain.Item{
					ID:   fmt.Sprintf(itemIDFmt, src.ID, itemSeq),
					Name: it.Name,
					Qty:  qty,
					Desc: it.Desc,
				}
				if it.Weapon != nil {
					w := *it.Weapon
					item.Weapon = &w
				}
				cat.Items = append(cat.Items, item)
			}
			inv.Custom[fc.ID] = append(inv.Custom[fc.ID], cat)
		}
	}
	for name := range src.Categories {
		if _, ok := byName[name]; !ok {
			return domain.Inventory{}, fmt.Errorf("%w: inventory %s has categories under unknown fixed category %q", domain.ErrValidation, src.ID, name)
		}
	}

	return inv, nil
}
