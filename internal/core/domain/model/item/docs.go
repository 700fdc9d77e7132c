// Package item contains the Item aggregate: a parcel owned by a courier registry.
//
// An item is created in Processing status, handed to container registries with
// Forward, annotated with AddCheckpoint, and ends either Completed (delivery confirmed
// against the exact price, which releases escrow) or Missing. Every successful
// mutation appends one checkpoint and raises one domain event; failed calls change nothing.
package item
