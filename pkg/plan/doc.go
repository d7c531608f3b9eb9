// Package plan defines the floor-plan data model and its canonical JSON
// serialization.
//
// This package is the hand-off boundary of the layout engine: [FloorPlan]
// is the sole object produced by generation and consumed by renderers,
// exporters, and any external CAD tooling. Downstream consumers treat it
// as read-only.
//
// # Core Types
//
//   - [RoomSpec]: a parsed room request before geometry exists
//   - [PlacedRoom]: a RoomSpec bound to a rectangle
//   - [HallwaySegment], [DoorPlacement], [WallSegment]: circulation geometry
//   - [Metadata]: soft findings and quality signals
//   - [FloorPlan]: the aggregate
//
// # Serialization
//
// Plans use a flat JSON format with all geometry in feet:
//
//	data, _ := plan.MarshalPlan(p)              // FloorPlan → []byte
//	p, _ := plan.ReadPlan(bytes.NewReader(data)) // []byte → FloorPlan
//
// File-based import and export, with path context on errors, live in
// the io package.
//
// Element order is preserved through the round trip, so two identical
// generation runs produce byte-identical files. [Fingerprint] condenses
// that property into a single UUIDv5 value.
//
// # Units
//
// All coordinates and dimensions are in feet. Door widths are the one
// exception: they are code lookup values in whole inches (28, 32, 36),
// with [DoorPlacement.WidthFt] doing the conversion where geometry needs it.
package plan
