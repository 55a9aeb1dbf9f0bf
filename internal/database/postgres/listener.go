package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Stashkeeper_Go/internal/database"
	"github.com/osse101/Stashkeeper_Go/internal/logger"
)

// ChangeHandler receives the table name carried by a change notification.
// An empty table means notifications may have been missed and everything should be reloaded.
type ChangeHandler func(table string)

// Listener holds a dedicated connection on LISTEN and forwards every notification
type Listener struct {
	db             *pgxpool.Pool
	channel        string
	reconnectDelay time.Duration
	onChange       ChangeHandler
}

// NewListener creates a Listener on the schema's change channel
func NewListener(db *pgxpool.Pool, onChange ChangeHandler) *Listener {
	return &Listener{
		db:             db,
		channel:        database.ChangeChannel,
		reconnectDelay: ListenerReconnectDelay,
		onChange:       onChange,
	}
}

// Run blocks until ctx is cancelled, reconnecting after failures.
// After every reconnect the handler is told to reload since notifications
// sent while disconnected are lost.
func (l *Listener) Run(ctx context.Context) {
	log := logger.FromContext(ctx)
	first := true
	for {
		err := l.listen(ctx, !first)
		first = false
		if ctx.Err() != nil {
			log.Info(LogMsgListenerStopped)
			return
		}
		log.Warn(LogMsgListenerFailed, "error", err, "retry_in", l.reconnectDelay)

		select {
		case <-ctx.Done():
			log.Info(LogMsgListenerStopped)
			return
		case <-time.After(l.reconnectDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context, resync bool) error {
	conn, err := l.db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire listener connection: %w", err)
	}
	// A connection that has been LISTENing must not go back to the pool
	defer func() {
		_ = conn.Conn().Close(context.Background())
		conn.Release()
	}()

	if _, err := conn.Exec(ctx, "LISTEN "+l.channel); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", l.channel, err)
	}
	logger.FromContext(ctx).Info(LogMsgListenerStarted, "channel", l.channel)

	if resync {
		l.onChange("")
	}

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return fmt.Errorf("wait for notification: %w", err)
		}
		logger.FromContext(ctx).Debug(LogMsgNotificationReceived, "table", n.Payload)
		l.onChange(n.Payload)
	}
}
