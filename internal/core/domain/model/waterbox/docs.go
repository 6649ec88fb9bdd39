// Package waterbox provides domain entities and business logic for physical
// water connection points. It implements the WaterBox aggregate root with
// lifecycle management and the current-assignment relation.
//
// The package includes:
//   - WaterBox: The aggregate root that manages box identity, lifecycle, and the current-assignment pointer
//   - BoxType: A value object classifying the installation
//
// Key business rules:
//   - A water box is created Active with no current assignment
//   - A water box cannot be deactivated while it still points at a live assignment
//   - The current-assignment pointer may only be set while the box is Active
//   - Boxes are soft-deactivated, never deleted
package waterbox
