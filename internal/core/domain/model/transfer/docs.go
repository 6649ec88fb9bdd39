// Package transfer provides the Transfer record: an immutable audit entry
// describing the handover of a water box from one assignment to another.
// Transfers are append-only; once created they are never updated or deleted.
package transfer
