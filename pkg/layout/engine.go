package layout

import (
	"github.com/matzehuels/planforge/pkg/errors"
	"github.com/matzehuels/planforge/pkg/plan"
	"github.com/matzehuels/planforge/pkg/program"
)

// Generate runs the full layout pipeline on a request and returns the
// finished plan. The only hard failures are an insufficient footprint
// and a packing that cannot honor a room's minimums; everything else
// the engine can detect lands in the plan metadata instead.
//
// opts may be nil for defaults. Identical requests always produce
// identical plans.
func Generate(req *program.Request, opts *Options) (*plan.FloorPlan, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	specs, err := program.Parse(req)
	if err != nil {
		return nil, err
	}

	var minTotal float64
	for i := range specs {
		minTotal += specs[i].MinArea
	}
	if minTotal > req.Footprint.Area() {
		return nil, errors.New(errors.ErrCodeInsufficientArea,
			"program needs at least %.0f sqft but the footprint has %.0f", minTotal, req.Footprint.Area())
	}

	// Service rooms pack inside the center band behind the kitchen.
	working := make([]plan.RoomSpec, len(specs))
	copy(working, specs)
	for i := range working {
		if working[i].Zone == plan.ZoneService {
			working[i].Zone = plan.ZoneCenter
		}
	}

	zl, halls, err := allocateZones(working, req.Footprint.Length, req.Footprint.Width, opts)
	if err != nil {
		return nil, err
	}

	var rooms []plan.PlacedRoom
	for _, z := range []plan.Zone{plan.ZoneMaster, plan.ZoneCenter, plan.ZoneSecondary} {
		band, ok := zl.band(z)
		if !ok {
			continue
		}
		var zspecs []plan.RoomSpec
		for i := range working {
			if working[i].Zone == z {
				zspecs = append(zspecs, working[i])
			}
		}
		if len(zspecs) == 0 {
			continue
		}
		rooms = append(rooms, packZone(z, zspecs, band, opts)...)
	}
	if err := verifyPlacement(rooms, opts); err != nil {
		return nil, err
	}

	optimizeAdjacency(rooms, opts)
	clusterPlumbing(rooms, opts)

	halls = addWingHallways(rooms, halls, zl, opts)
	fixDeadEnds(halls, rooms, req.Footprint.Length, opts)

	doors, fallback := placeDoors(rooms, halls, req.Program.OpenConcept, opts)
	resolveSwings(doors, rooms, halls)

	// The reachability verdict includes the doors just placed, so a
	// room bridged by a fallback door counts as reached.
	unreachable := BuildCirculationGraph(rooms, halls, doors, opts.Tolerance).Unreachable()

	walls := buildWalls(rooms, halls, doors, req.Footprint.Length, req.Footprint.Width, req.Program.OpenConcept, opts)

	p := &plan.FloorPlan{
		Length:   req.Footprint.Length,
		Width:    req.Footprint.Width,
		Rooms:    rooms,
		Hallways: halls,
		Doors:    doors,
		Walls:    walls,
	}
	p.Meta = buildMetadata(rooms, halls, doors, unreachable, fallback, req.Footprint.Length, req.Footprint.Width, opts)

	id, err := plan.Fingerprint(p)
	if err != nil {
		return nil, err
	}
	p.Meta.PlanID = id
	return p, nil
}
