package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer drains the reservations queue and appends one line per event to
// an audit log file.
type Consumer struct {
	url     string
	logPath string
}

// NewConsumer returns a Consumer writing to logs/reservations.log.
func NewConsumer(url string) *Consumer {
	return &Consumer{url: url, logPath: filepath.Join("logs", "reservations.log")}
}

// Run connects to RabbitMQ and consumes until ctx is cancelled.  Broker
// failures trigger a reconnect with exponential backoff capped at 30s;
// messages that cannot be handled are rejected without requeue so a poison
// message cannot stall the loop.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		conn, err := amqp.Dial(c.url)
		if err != nil {
			log.Printf("reservation-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = c.consumeLoop(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("reservation-consumer: consume loop ended: %v; reconnecting", err)
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("reservation-consumer: set QoS failed: %v", err)
	}
	if _, err := ch.QueueDeclare(ReservationsQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(ReservationsQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := c.handle(d.Body); err != nil {
				log.Printf("reservation-consumer: handle message failed: %v", err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) handle(body []byte) error {
	var ev ReservationEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.logPath), 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(c.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	return WriteEventLine(f, ev)
}

// WriteEventLine formats ev as a single human-friendly audit line.
func WriteEventLine(w io.Writer, ev ReservationEvent) error {
	parts := []string{fmt.Sprintf("[%s] %s", ev.OccurredAt.UTC().Format(time.RFC3339), ev.Type)}
	if ev.ReservationID != uuid.Nil {
		parts = append(parts, "reservation_id="+ev.ReservationID.String())
	}
	if ev.UserID != uuid.Nil {
		parts = append(parts, "user_id="+ev.UserID.String())
	}
	if ev.Status != "" {
		parts = append(parts, "status="+ev.Status)
	}
	if ev.CheckinStatus != "" {
		parts = append(parts, "checkin="+ev.CheckinStatus)
	}
	if ev.RoomNumber != "" {
		parts = append(parts, "room="+ev.RoomNumber)
	}
	if ev.Amount != nil {
		parts = append(parts, "amount="+ev.Amount.StringFixed(2))
	}
	if ev.Message != "" {
		parts = append(parts, fmt.Sprintf("message=%q", ev.Message))
	}
	if _, err := io.WriteString(w, strings.Join(parts, " | ")+"\n"); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
