package domain

// StateChangedPayload describes a committed write
type StateChangedPayload struct {
	Op           string   `json:"op"`
	ActorID      string   `json:"actor_id"`
	InventoryIDs []string `json:"inventory_ids,omitempty"`
	ShopChanged  bool     `json:"shop_changed,omitempty"`
	Version      uint64   `json:"version"`
	Timestamp    int64    `json:"timestamp"`
}

// StateReloadedPayload describes a reload attempt
type StateReloadedPayload struct {
	Source    string `json:"source"`
	Version   uint64 `json:"version"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
