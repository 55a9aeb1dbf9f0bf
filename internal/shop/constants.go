package shop

// Validation messages
const (
	ErrMsgNotAWeapon        = "item is not a weapon"
	ErrMsgNameRequired      = "weapon name is required"
	ErrMsgNegativePrice     = "price cannot be negative"
	ErrMsgNegativeCapacity  = "magazine capacity cannot be negative"
	ErrMsgStandHasNoSlots   = "stand has no slots"
	ErrMsgWeaponNotOnStand  = "weapon is not on the stand"
	ErrMsgNoReceivingBucket = "buyer inventory has no fixed categories"
	ErrMsgPriceFmt          = "price %d, balance %d"
)
