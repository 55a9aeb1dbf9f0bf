package sse

// StateChangedPayload tells clients which inventories to refetch
type StateChangedPayload struct {
	Op           string   `json:"op"`
	ActorID      string   `json:"actor_id,omitempty"`
	InventoryIDs []string `json:"inventory_ids,omitempty"`
	ShopChanged  bool     `json:"shop_changed"`
	Version      uint64   `json:"version"`
}

// ReloadPayload tells clients that everything may have changed
type ReloadPayload struct {
	Source  string `json:"source"`
	Version uint64 `json:"version"`
	Error   string `json:"error,omitempty"`
}

// ConnectedPayload is the body of the first event on a stream
type ConnectedPayload struct {
	ClientID    string   `json:"client_id"`
	Types       []string `json:"types,omitempty"`
	Inventories []string `json:"inventories,omitempty"`
}
