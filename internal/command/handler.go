package command

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/osse101/Stashkeeper_Go/internal/logger"
)

// HeaderUserID names the acting user on the upgrade request
const HeaderUserID = "X-User-ID"

// Handler upgrades the request and serves commands until the client leaves.
// The connection actor comes from the X-User-ID header or the "user" query parameter.
func Handler(hub *Hub, dispatcher *Dispatcher, checkOrigin func(r *http.Request) bool) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     checkOrigin,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		actor := r.Header.Get(HeaderUserID)
		if actor == "" {
			actor = r.URL.Query().Get(ActorQueryParam)
		}

		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already wrote the HTTP error
			log.Warn(LogMsgUpgradeFailed, "error", err)
			return
		}

		conn := newConnection(ws, hub, dispatcher, actor, log)
		log.Info(LogMsgClientConnected, "actor", actor, "total_clients", hub.ClientCount()+1)
		conn.Handle(logger.WithActor(r.Context(), actor))
		log.Info(LogMsgClientDisconnected, "actor", actor)
	}
}
