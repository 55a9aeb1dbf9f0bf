package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeaponForm_Defaults(t *testing.T) {
	got := WeaponForm{Name: "Glock"}.NewWeapon()
	assert.Equal(t, NewWeapon{
		Name:        "Glock",
		Damage:      DefaultWeaponDamage,
		MagCapacity: DefaultWeaponMagCapacity,
		AmmoType:    DefaultWeaponAmmoType,
		Price:       DefaultWeaponPrice,
	}, got)
}

func TestWeaponForm_ExplicitZeroesAreKept(t *testing.T) {
	zero, empty := 0, ""
	got := WeaponForm{Name: "Faca", MagCapacity: &zero, Price: &zero, AmmoType: &empty}.NewWeapon()
	assert.Equal(t, 0, got.MagCapacity)
	assert.Equal(t, 0, got.Price)
	assert.Empty(t, got.AmmoType)
}

func TestStand_Has(t *testing.T) {
	s := Stand{ID: "stand1", WeaponIDs: []string{"a", "b"}}
	assert.True(t, s.Has("b"))
	assert.False(t, s.Has("c"))

	c := s.Clone()
	c.WeaponIDs[0] = "z"
	assert.Equal(t, "a", s.WeaponIDs[0], "clone does not share the backing array")
}
