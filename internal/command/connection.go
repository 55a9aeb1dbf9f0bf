package command

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Connection is one WebSocket client. Commands are handled in arrival order.
type Connection struct {
	ws         *websocket.Conn
	hub        *Hub
	dispatcher *Dispatcher
	log        *slog.Logger

	// actor is used for commands that do not name one
	actor string

	send   chan []byte
	mu     sync.Mutex
	closed bool
}

func newConnection(ws *websocket.Conn, hub *Hub, dispatcher *Dispatcher, actor string, log *slog.Logger) *Connection {
	return &Connection{
		ws:         ws,
		hub:        hub,
		dispatcher: dispatcher,
		log:        log,
		actor:      actor,
		send:       make(chan []byte, SendBufferSize),
	}
}

// Handle runs the connection until the peer goes away or the hub closes it
func (c *Connection) Handle(ctx context.Context) {
	c.hub.add(c)
	defer c.hub.remove(c)

	c.ws.SetReadLimit(MaxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(PongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(PongWait))
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.writePump()
	}()
	c.readPump(ctx)
	c.Close()
	<-done
}

func (c *Connection) readPump(ctx context.Context) {
	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.log.Warn(LogMsgReadError, "error", err)
			}
			return
		}

		var cmd Command
		if err := json.Unmarshal(message, &cmd); err != nil {
			c.log.Debug(LogMsgInvalidMessage, "error", err)
			c.reply(Reply{Kind: ReplyError, Error: &Error{Code: CodeInvalidMessage, Message: MsgInvalidMessage}})
			continue
		}
		if cmd.Actor == "" {
			cmd.Actor = c.actor
		}

		c.reply(c.dispatcher.Dispatch(ctx, cmd))
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(PingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(WriteWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				c.log.Warn(LogMsgWriteError, "error", err)
				return
			}

		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(WriteWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Connection) reply(r Reply) {
	msg, err := json.Marshal(r)
	if err != nil {
		c.log.Error(LogMsgWriteError, "error", err, "type", r.Type)
		return
	}
	c.enqueue(msg)
}

// enqueue never blocks. A full buffer drops the message.
func (c *Connection) enqueue(msg []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- msg:
	default:
		c.log.Warn(LogMsgSendBufferFull)
	}
}

// Close stops the write pump after it flushes queued messages. Safe to call more than once.
func (c *Connection) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}
