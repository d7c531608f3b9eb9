// Package layout is the floor-plan generation engine: it turns a parsed
// room program into a complete [plan.FloorPlan] with placed rooms,
// hallways, doors, and interior walls.
//
// # Pipeline
//
// [Generate] runs the stages in a fixed order:
//
//  1. Zone allocation: the footprint is split along its length into a
//     master wing, a public/service center, and a secondary wing, with
//     vertical corridors reserved between them.
//  2. Packing: each zone band is filled by a packer specialized for its
//     contents (center packer, wing packer, squarified treemap fallback).
//  3. Adjacency optimization: same-zone room swaps that improve the
//     adjacency rule score are accepted until a local optimum.
//  4. Plumbing clustering: the same swap discipline restricted to wet
//     rooms, pulling them toward a shared plumbing core.
//  5. Hallway generation: deep secondary wings receive an internal
//     corridor; dead ends are extended to meet circulation.
//  6. Connectivity check: a flood fill from the hallway network records
//     rooms that cannot be reached. This never fails the run.
//  7. Door placement, swing clearance resolution, and wall segmentation.
//
// Hard failures are limited to two structured errors: INSUFFICIENT_AREA
// when the program cannot fit the footprint at minimum sizes, and
// PACKING_FAILED when a required room cannot be placed at or above its
// minimum. Everything else (unreachable rooms, unresolved door swings,
// geometry warnings) is reported through [plan.Metadata].
//
// The engine is deterministic: identical requests and options produce
// byte-identical plans. All iteration is over slices in fixed order and
// every hill climb is capped by [Options].
package layout
