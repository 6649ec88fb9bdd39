// Package assignment provides the Assignment aggregate: a time-bounded link
// between a water box and a subscriber, carrying a monthly fee.
//
// Key business rules:
//   - An assignment is created Active with the creation timestamp set to now
//   - Deactivation sets the end date; restoration clears it again
//   - An assignment retired because of a transfer keeps a back-reference to
//     the transfer record for audit
//   - Assignments are soft-deactivated, never deleted
package assignment
