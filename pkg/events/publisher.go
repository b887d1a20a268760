package events

import (
	"context"
	"errors"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

// WatermillPublisher sends events to a single watermill topic. With a
// gochannel pub/sub it doubles as the in-process bus.
type WatermillPublisher struct {
	publisher message.Publisher
	topic     string
}

func NewWatermillPublisher(publisher message.Publisher, topic string) *WatermillPublisher {
	return &WatermillPublisher{publisher: publisher, topic: topic}
}

func (p *WatermillPublisher) Publish(ctx context.Context, event Event) error {
	data, err := Encode(event)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("event_type", event.EventType())
	msg.SetContext(ctx)
	return p.publisher.Publish(p.topic, msg)
}

// FanoutPublisher publishes to every target and joins their errors.
type FanoutPublisher struct {
	targets []Publisher
}

func NewFanoutPublisher(targets ...Publisher) *FanoutPublisher {
	return &FanoutPublisher{targets: targets}
}

func (f *FanoutPublisher) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, t := range f.targets {
		if err := t.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RecordingPublisher keeps published events in memory.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (r *RecordingPublisher) Publish(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *RecordingPublisher) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the recorded event codes in publish order.
func (r *RecordingPublisher) Types() []string {
	var out []string
	for _, e := range r.Events() {
		out = append(out, e.EventType())
	}
	return out
}
