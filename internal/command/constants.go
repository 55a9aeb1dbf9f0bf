package command

import "time"

// Command types accepted on the WebSocket transport
const (
	TypeListUsers       = "list_users"
	TypeListInventories = "list_inventories"
	TypeGetInventory    = "get_inventory"
	TypeGetShop         = "get_shop"
	TypeListWeapons     = "list_weapons"

	TypeRenameFixedCategory   = "rename_fixed_category"
	TypeCreateCustomCategory  = "create_custom_category"
	TypeRenameCustomCategory  = "rename_custom_category"
	TypeDeleteCustomCategory  = "delete_custom_category"
	TypeCreateItem            = "create_item"
	TypeEditItem              = "edit_item"
	TypeDeleteItem            = "delete_item"
	TypeMoveItem              = "move_item"
	TypeTransferItem          = "transfer_item"
	TypeSetMoney              = "set_money"
	TypeSetMeta               = "set_meta"
	TypeShoot                 = "shoot"
	TypeReloadWeapon          = "reload_weapon"
	TypeCreateWeapon          = "create_weapon"
	TypeDeleteWeapon          = "delete_weapon"
	TypeAddWeaponToStand      = "add_weapon_to_stand"
	TypeRemoveWeaponFromStand = "remove_weapon_from_stand"
	TypeRandomizeStand        = "randomize_stand"
	TypePurchase              = "purchase"
	TypeReloadState           = "reload_state"
)

// Reply kinds
const (
	ReplyResult = "result"
	ReplyError  = "error"
	ReplyEvent  = "event"
)

// Error codes sent back to clients
const (
	CodeInvalidMessage       = "invalid_message"
	CodeUnknownCommand       = "unknown_command"
	CodeInvalidPayload       = "invalid_payload"
	CodeValidation           = "validation"
	CodeInvalidIndex         = "invalid_index"
	CodeConfirmationRequired = "confirmation_required"
	CodeNotFound             = "not_found"
	CodeUnknownUser          = "unknown_user"
	CodePermissionDenied     = "permission_denied"
	CodeInsufficientFunds    = "insufficient_funds"
	CodeEmptyMagazine        = "empty_magazine"
	CodeUnknownCapacity      = "unknown_capacity"
	CodeNoStockAvailable     = "no_stock_available"
	CodeRemoteFailure        = "remote_failure"
	CodeLoadFailed           = "load_failed"
	CodeInternal             = "internal"
)

// Client-facing messages
const (
	MsgInvalidMessage    = "Failed to parse message"
	MsgUnknownCommandFmt = "Unknown command type %q"
	MsgInvalidPayload    = "Invalid command payload"
	MsgInternal          = "Something went wrong"
)

// Connection settings
const (
	// WriteWait is the time allowed to write a message to the peer
	WriteWait = 10 * time.Second

	// PongWait is the time allowed to read the next pong message from the peer
	PongWait = 60 * time.Second

	// PingPeriod must be less than PongWait
	PingPeriod = (PongWait * 9) / 10

	// MaxMessageSize bounds inbound frames. Weapon images travel base64 encoded.
	MaxMessageSize = 4 << 20

	// SendBufferSize is the outbound queue per connection
	SendBufferSize = 256

	// ActorQueryParam names the acting user when the header cannot be set
	ActorQueryParam = "user"
)

// Log messages
const (
	LogMsgClientConnected    = "WebSocket client connected"
	LogMsgClientDisconnected = "WebSocket client disconnected"
	LogMsgUpgradeFailed      = "WebSocket upgrade failed"
	LogMsgReadError          = "WebSocket read error"
	LogMsgWriteError         = "WebSocket write error"
	LogMsgSendBufferFull     = "WebSocket send buffer full, dropping message"
	LogMsgInvalidMessage     = "Failed to parse WebSocket message"
	LogMsgCommandHandled     = "Command handled"
	LogMsgCommandFailed      = "Command failed"
	LogMsgSubscribed         = "WebSocket subscriber registered for event types"
	LogMsgEventRelayed       = "Relaying event to WebSocket clients"
)
