package contracts

import "context"

// ActivityEvent describes an administrative action worth broadcasting.
type ActivityEvent struct {
	Event      string      `json:"event"`
	ActorRole  string      `json:"actor_role"`
	ActorID    string      `json:"actor_id,omitempty"`
	ResourceID string      `json:"resource_id,omitempty"`
	Payload    interface{} `json:"payload,omitempty"`
	OccurredAt string      `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event *ActivityEvent) error
}
