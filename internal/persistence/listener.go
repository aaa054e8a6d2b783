package persistence

import (
	"context"
	"time"

	"salesflow-backend/internal/logger"

	"github.com/jackc/pgx/v5"
)

const dealsChannel = "deals_changed"

// Listener subscribes to Postgres NOTIFY signals on the deals channel. A
// dedicated pgx connection is held open per subscription; on connection
// loss it backs off and reconnects until cancelled.
type Listener struct {
	dsn    string
	logger *logger.Logger

	// reconnectDelay is how long to wait before redialing a dead
	// connection
	reconnectDelay time.Duration
}

var _ Notifier = (*Listener)(nil)

// NewListener creates a Postgres notification listener
func NewListener(dsn string, log *logger.Logger) *Listener {
	return &Listener{
		dsn:            dsn,
		logger:         log,
		reconnectDelay: 5 * time.Second,
	}
}

// Subscribe invokes onChange for every deals change signal until cancelled.
// The initial connection is established synchronously so callers learn
// immediately when the channel is unavailable.
func (l *Listener) Subscribe(ctx context.Context, onChange func()) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)

	conn, err := l.listen(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	go l.run(ctx, conn, onChange)
	return cancel, nil
}

func (l *Listener) listen(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(ctx, "LISTEN "+dealsChannel); err != nil {
		_ = conn.Close(ctx)
		return nil, err
	}
	return conn, nil
}

func (l *Listener) run(ctx context.Context, conn *pgx.Conn, onChange func()) {
	defer func() {
		if conn != nil {
			closeCtx, closeCancel := context.WithTimeout(context.Background(), 2*time.Second)
			_ = conn.Close(closeCtx)
			closeCancel()
		}
	}()

	for {
		if conn == nil {
			select {
			case <-ctx.Done():
				return
			case <-time.After(l.reconnectDelay):
			}
			next, err := l.listen(ctx)
			if err != nil {
				l.logger.WithError(err).Warn("Live feed reconnect failed")
				continue
			}
			conn = next
			l.logger.Info("Live feed reconnected")
			// Changes may have happened while disconnected
			onChange()
		}

		if _, err := conn.WaitForNotification(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			l.logger.WithError(err).Warn("Live feed connection lost")
			closeCtx, closeCancel := context.WithTimeout(context.Background(), 2*time.Second)
			_ = conn.Close(closeCtx)
			closeCancel()
			conn = nil
			continue
		}

		onChange()
	}
}
