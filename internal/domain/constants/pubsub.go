// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attribute names.
const (
	PubSubAttrEventType = "event_type"
	PubSubAttrVideoID   = "video_id"
	PubSubAttrOwnerID   = "owner_id"
	PubSubAttrRequestID = "request_id"
)
