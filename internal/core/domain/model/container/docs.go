// Package container contains the Container aggregate: a bulk shipment owned by a
// container registry, loaded at creation with the items pending for its destination.
package container
