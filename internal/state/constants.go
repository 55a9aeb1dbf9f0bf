package state

import "time"

// Operation names used in logs, metrics and state.changed events
const (
	OpRenameFixedCategory   = "rename_fixed_category"
	OpCreateCustomCategory  = "create_custom_category"
	OpRenameCustomCategory  = "rename_custom_category"
	OpDeleteCustomCategory  = "delete_custom_category"
	OpCreateItem            = "create_item"
	OpEditItem              = "edit_item"
	OpDeleteItem            = "delete_item"
	OpMoveItem              = "move_item"
	OpTransferItem          = "transfer_item"
	OpSetMoney              = "set_money"
	OpSetMeta               = "set_meta"
	OpShoot                 = "shoot"
	OpReloadWeapon          = "reload_weapon"
	OpCreateWeapon          = "create_weapon"
	OpDeleteWeapon          = "delete_weapon"
	OpAddWeaponToStand      = "add_weapon_to_stand"
	OpRemoveWeaponFromStand = "remove_weapon_from_stand"
	OpRandomizeStand        = "randomize_stand"
	OpPurchase              = "purchase"
)

// Reload sources
const (
	SourceStartup  = "startup"
	SourceListener = "listener"
	SourceSchedule = "schedule"
	SourceAdmin    = "admin"
)

// View cache defaults
const (
	DefaultViewCacheSize = 64
	DefaultViewCacheTTL  = 5 * time.Minute
)

// Error messages
const (
	ErrMsgGMOnly         = "only the game master may do this"
	ErrMsgAnonymous      = "anonymous users cannot modify inventories"
	ErrMsgNotOwnerFmt    = "user %s cannot modify inventory %s"
	ErrMsgNotVisibleFmt  = "user %s cannot view inventory %s"
	ErrMsgUnknownUserFmt = "user %s"
	ErrMsgInventoryFmt   = "inventory %s"
	ErrMsgDeleteCategory = "deleting a category removes all of its items"
	ErrMsgDeleteWeapon   = "deleting a weapon removes it from every stand"
	ErrMsgRemoteOpFmt    = "%s: %v"
)

// Log messages
const (
	LogMsgCommitted         = "State committed"
	LogMsgNoOp              = "Operation had no effect"
	LogMsgRejected          = "Operation rejected"
	LogMsgRemoteFailure     = "Remote write failed, local state unchanged"
	LogMsgPersisted         = "Changes persisted"
	LogMsgPublishFailed     = "Failed to publish state event"
	LogMsgReloaded          = "State reloaded from store"
	LogMsgReloadFailed      = "State reload failed, keeping last good state"
	LogMsgReloadSkipped     = "Reload skipped, running offline"
	LogMsgDroppedRows       = "Dropped orphaned rows during reload"
	LogMsgImageUploaded     = "Weapon image stored"
	LogMsgImageRemoveFailed = "Failed to remove orphaned weapon image"
)
