package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/Stashkeeper_Go/internal/logger"
)

// Handler serves the event stream. The optional "types" and "inventories"
// query parameters narrow what the client receives.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		q := r.URL.Query()
		filter := Filter{
			Types:       splitList(q.Get(QueryParamTypes)),
			Inventories: splitList(q.Get(QueryParamInventories)),
		}

		ctx := r.Context()
		log := logger.FromContext(ctx)

		client := hub.Register(filter)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"types", filter.Types,
			"inventories", filter.Inventories,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		rc := http.NewResponseController(w)
		write := func(evt Event) bool {
			msg, err := FormatSSEMessage(evt)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			_ = rc.SetWriteDeadline(time.Now().Add(WriteTimeout))
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if !write(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   ConnectedPayload{ClientID: client.ID, Types: filter.Types, Inventories: filter.Inventories},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					// hub is shutting down
					return
				}
				if !write(evt) {
					return
				}

			case <-ticker.C:
				if !write(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
