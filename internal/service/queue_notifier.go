package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Channel prefix for queue change events. Full channel name is
	// queue:changed:<doctorID>:<YYYY-MM-DD> so waiting-room displays can
	// subscribe per doctor per day.
	queueChannelPrefix = "queue:changed:"

	// Snapshot keys let late subscribers read the last published state
	// without waiting for the next event.
	queueSnapshotPrefix = "queue:snapshot:"

	// Snapshots expire a day after the queue date, same lifetime as the
	// appointments they describe.
	queueSnapshotTTL = 48 * time.Hour

	notifyTimeout = 5 * time.Second
)

// QueueChangedEvent is published whenever a doctor's daily queue changes
// shape: a new booking, a status transition or a cancellation.
type QueueChangedEvent struct {
	DoctorID        uuid.UUID `json:"doctor_id"`
	Date            string    `json:"date"`
	AppointmentID   uuid.UUID `json:"appointment_id"`
	Trigger         string    `json:"trigger"`
	CurrentPosition int       `json:"current_position"`
	QueueLength     int       `json:"queue_length"`
	PublishedAt     time.Time `json:"published_at"`
}

// Trigger values for QueueChangedEvent.
const (
	QueueTriggerBooked    = "booked"
	QueueTriggerStatus    = "status_changed"
	QueueTriggerCancelled = "cancelled"
)

// QueueNotifier fans out queue changes over Redis pub/sub.
//
// Publishing is best effort: a Redis outage must never fail the booking or
// status update that triggered the event, so errors are logged and swallowed
// by callers.
type QueueNotifier struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewQueueNotifier(redisClient *redis.Client, log *logrus.Logger) *QueueNotifier {
	return &QueueNotifier{
		redisClient: redisClient,
		log:         log,
	}
}

// Publish sends the event to the doctor/date channel and refreshes the
// snapshot key. Returns the publish error for callers that want to log it,
// but callers should treat it as non-fatal.
func (n *QueueNotifier) Publish(ctx context.Context, event QueueChangedEvent) error {
	event.PublishedAt = time.Now().UTC()

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal queue event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	channel := n.channelName(event.DoctorID, event.Date)
	snapshotKey := n.snapshotKey(event.DoctorID, event.Date)

	pipe := n.redisClient.TxPipeline()
	pipe.Publish(ctx, channel, payload)
	pipe.Set(ctx, snapshotKey, payload, queueSnapshotTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		n.log.Warnf("Failed to publish queue event for doctor %s on %s: %+v", event.DoctorID, event.Date, err)
		return fmt.Errorf("publish queue event: %w", err)
	}

	n.log.Debugf("Published queue event: doctor=%s date=%s trigger=%s", event.DoctorID, event.Date, event.Trigger)
	return nil
}

// Subscribe returns a pub/sub subscription for one doctor's queue on one
// date. The caller owns the subscription and must Close it.
func (n *QueueNotifier) Subscribe(ctx context.Context, doctorID uuid.UUID, date string) *redis.PubSub {
	return n.redisClient.Subscribe(ctx, n.channelName(doctorID, date))
}

// LastSnapshot returns the most recently published event for a doctor/date,
// or nil when nothing has been published yet.
func (n *QueueNotifier) LastSnapshot(ctx context.Context, doctorID uuid.UUID, date string) (*QueueChangedEvent, error) {
	raw, err := n.redisClient.Get(ctx, n.snapshotKey(doctorID, date)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("get queue snapshot: %w", err)
	}

	var event QueueChangedEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, fmt.Errorf("unmarshal queue snapshot: %w", err)
	}
	return &event, nil
}

func (n *QueueNotifier) channelName(doctorID uuid.UUID, date string) string {
	return fmt.Sprintf("%s%s:%s", queueChannelPrefix, doctorID, date)
}

func (n *QueueNotifier) snapshotKey(doctorID uuid.UUID, date string) string {
	return fmt.Sprintf("%s%s:%s", queueSnapshotPrefix, doctorID, date)
}
