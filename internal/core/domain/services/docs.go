// Package services provides domain services that coordinate more than one aggregate
// of the tracking domain.
//
// The package includes:
//   - ContainerLoader: creates a container under a container registry and loads it
//     with the items pending for its destination
package services
