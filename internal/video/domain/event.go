package domain

const (
	//QueueName definition queue name
	QueueName = "video_events"
)

// EventType video lifecycle event
type EventType string

const (
	// EventUploaded video created
	EventUploaded EventType = "video.uploaded"
	// EventUpdated video fields or media replaced
	EventUpdated EventType = "video.updated"
	// EventDeleted video removed
	EventDeleted EventType = "video.deleted"
)

// VideoEvent message published on the event queue
type VideoEvent struct {
	Type       EventType `json:"type"`
	VideoID    string    `json:"video_id"`
	ChannelID  string    `json:"channel_id"`
	Owner      string    `json:"owner"`
	Title      string    `json:"title,omitempty"`
	VideoKey   string    `json:"video_key,omitempty"`
	OccurredAt int64     `json:"occurred_at"`
}
