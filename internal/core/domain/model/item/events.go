package item

const (
	aggregateType = "item"

	EventCreated         = "item.created"
	EventForwarded       = "item.forwarded"
	EventCheckpointAdded = "item.checkpoint_added"
	EventCompleted       = "item.completed"
	EventMarkedMissing   = "item.missing"
)
