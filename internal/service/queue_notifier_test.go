package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Publish and LastSnapshot must agree on the snapshot key, and Publish and
// Subscribe on the channel name, or late readers see nothing.
func TestQueueNotifierKeyNaming(t *testing.T) {
	n := NewQueueNotifier(nil, logrus.New())
	doctorID := uuid.MustParse("5f1c9c31-7a22-4b3e-9d2a-111111111111")

	channel := n.channelName(doctorID, "2026-09-01")
	want := "queue:changed:5f1c9c31-7a22-4b3e-9d2a-111111111111:2026-09-01"
	if channel != want {
		t.Errorf("channelName = %q, want %q", channel, want)
	}

	key := n.snapshotKey(doctorID, "2026-09-01")
	want = "queue:snapshot:5f1c9c31-7a22-4b3e-9d2a-111111111111:2026-09-01"
	if key != want {
		t.Errorf("snapshotKey = %q, want %q", key, want)
	}

	if n.channelName(doctorID, "2026-09-01") == n.channelName(doctorID, "2026-09-02") {
		t.Error("different dates must map to different channels")
	}
}

func TestQueueChangedEventRoundTrip(t *testing.T) {
	event := QueueChangedEvent{
		DoctorID:        uuid.New(),
		Date:            "2026-09-01",
		AppointmentID:   uuid.New(),
		Trigger:         QueueTriggerStatus,
		CurrentPosition: 2,
		QueueLength:     5,
		PublishedAt:     time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Subscribers and snapshot readers decode what Publish wrote
	var decoded QueueChangedEvent
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded != event {
		t.Errorf("round trip changed the event: got %+v, want %+v", decoded, event)
	}
}
