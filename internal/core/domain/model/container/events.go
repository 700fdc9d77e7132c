package container

const (
	aggregateType = "container"

	EventCreated           = "container.created"
	EventShipmentInitiated = "container.shipment_initiated"
	EventShipmentCompleted = "container.shipment_completed"
)
