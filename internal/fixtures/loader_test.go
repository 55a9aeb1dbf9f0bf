package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
)

func TestDefault_SeedContents(t *testing.T) {
	state, err := Default()
	require.NoError(t, err)

	require.Len(t, state.Users, 3)
	assert.True(t, state.Users["gm"].IsGM())
	assert.False(t, state.Users["senshi"].IsGM())

	senshi, ok := state.Inventories["senshi"]
	require.True(t, ok)
	assert.Equal(t, 5000, senshi.Money)
	assert.Equal(t, "senshi", senshi.OwnerID)
	require.Len(t, senshi.FixedCategories, 4)
	assert.Equal(t, "Mochila", senshi.FixedCategories[1].Name)
	assert.Equal(t, "senshi-fixed-1", senshi.FixedCategories[1].ID)

	mochila := senshi.Custom["senshi-fixed-1"]
	require.Len(t, mochila, 2)
	assert.Equal(t, "Chaves", mochila[0].Name)
	require.Len(t, mochila[0].Items, 1)
	assert.Equal(t, "Corda", mochila[0].Items[0].Name)
	assert.Equal(t, 1, mochila[0].Items[0].Qty)
	assert.Equal(t, "Armas", mochila[1].Name)
	assert.Empty(t, mochila[1].Items)

	don := state.Inventories["don"]
	assert.Equal(t, 3000, don.Money)
	assert.Equal(t, "Maleta", don.FixedCategories[1].Name)

	carro := state.Inventories["carro"]
	assert.True(t, carro.IsShared())
	assert.Equal(t, domain.InventoryVehicle, carro.Type)
	assert.Len(t, carro.FixedCategories, 3)

	require.Len(t, state.Shop.Stands, 6)
	for _, st := range state.Shop.Stands {
		assert.Equal(t, 20, st.Slots)
		assert.Empty(t, st.WeaponIDs)
	}
	assert.Empty(t, state.Weapons)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	content := `
users:
  - {id: gm, name: GM, role: gm}
weapons:
  - {id: w1, name: Glock, damage: 3, mag_capacity: 17, ammo_type: 9mm, price: 1500}
inventories:
  - id: box
    name: Box
    categories:
      Mochila:
        - name: Armas
          items:
            - name: Glock
              qty: 0
              weapon: {weapon_id: w1, mag_current: 5, mag_capacity: 17, ammo_type: 9mm, damage: 3}
stands:
  - {id: s1, name: S1, slots: 2, weapons: [w1, w1]}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	state, err := Load(path)
	require.NoError(t, err)

	box := state.Inventories["box"]
	require.Len(t, box.FixedCategories, len(domain.DefaultFixedCategories), "missing fixed list falls back to defaults")
	items := box.Custom["box-fixed-1"][0].Items
	require.Len(t, items, 1)
	assert.Equal(t, domain.DefaultItemQty, items[0].Qty)
	require.NotNil(t, items[0].Weapon)
	assert.Equal(t, 5, items[0].Weapon.MagCurrent)

	assert.Equal(t, []string{"w1"}, state.Shop.Stands[0].WeaponIDs)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown owner", "inventories:\n  - {id: a, name: A, owner: ghost}\n"},
		{"unknown bucket", "inventories:\n  - id: a\n    name: A\n    fixed: [X]\n    categories:\n      Y:\n        - name: C\n"},
		{"duplicate user", "users:\n  - {id: u}\n  - {id: u}\n"},
		{"unknown stand weapon", "stands:\n  - {id: s, name: S, slots: 1, weapons: [nope]}\n"},
		{"negative money", "inventories:\n  - {id: a, name: A, money: -1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := Parse([]byte(tt.content))
			require.NoError(t, err)
			_, err = file.ToState()
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("users: [unclosed"))
	assert.Error(t, err)
}

func TestLoad_RejectsFileFailingSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inventories:\n  - {id: a, money: lots}\n"), 0o600))

	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "/inventories/0/money")
}
