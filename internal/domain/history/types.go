package history

type EventType string

const (
	EventCreated        EventType = "CREATED"
	EventUpdated        EventType = "UPDATED"
	EventAddressUpdated EventType = "ADDRESS_UPDATED"
	EventStatusChanged  EventType = "STATUS_CHANGED"
	EventRevoked        EventType = "REVOKED"
	EventCancelled      EventType = "CANCELLED"
)

type ActorType string

const (
	ActorCustomer ActorType = "customer"
	ActorVendor   ActorType = "vendor"
	ActorSystem   ActorType = "system"
)
