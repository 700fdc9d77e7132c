package kernel

// ShipmentType is an operator-defined category code. Registries store it without interpreting it.
type ShipmentType uint8
