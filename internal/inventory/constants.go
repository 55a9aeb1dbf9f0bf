package inventory

// Validation messages
const (
	ErrMsgNameRequired     = "name is required"
	ErrMsgCategoryMissing  = "target category does not exist"
	ErrMsgNegativeQty      = "quantity cannot be negative"
	ErrMsgNonPositiveQty   = "quantity must be positive"
	ErrMsgNegativeMoney    = "money cannot be negative"
	ErrMsgNegativeCapacity = "magazine capacity cannot be negative"
	ErrMsgMagOutOfRange    = "magazine count must be between 0 and capacity"
	ErrMsgNotAWeapon       = "weapon fields on a plain item"
	ErrMsgDifferentBuckets = "categories belong to different fixed categories"
	ErrMsgSameInventory    = "source and target inventory are the same"
	ErrMsgNoFixedBuckets   = "target inventory has no fixed categories"
)
