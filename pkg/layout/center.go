package layout

import (
	"math"
	"sort"

	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

// packCenter lays out the merged public/service band. Public rooms form
// the front rows: the great room across the front with dining and
// kitchen behind it when all three are present, side by side or stacked
// when only two are. Service rooms pack into a shallow strip behind the
// public rows, started under the kitchen so the pantry and laundry land
// against it.
func packCenter(specs []plan.RoomSpec, band geometry.Rect, opts *Options) []plan.PlacedRoom {
	var small []plan.RoomSpec
	var gr, dr, kit *plan.RoomSpec
	for _, s := range specs {
		s := s
		switch s.Type {
		case plan.TypeGreatRoom:
			gr = &s
		case plan.TypeDiningRoom:
			dr = &s
		case plan.TypeKitchen:
			kit = &s
		default:
			small = append(small, s)
		}
	}
	if gr == nil && dr == nil && kit == nil {
		return squarify(specs, band, opts.MaxAspect)
	}

	var placed []plan.PlacedRoom
	frontMaxY := band.Y

	switch {
	case gr != nil && dr != nil && kit != nil:
		grD, grFills := rowDepth([]float64{gr.TargetArea}, band.W, opts.MaxAspect)
		grD = math.Max(grD, 12)
		grD = math.Min(grD, 0.6*band.D)
		backD, backFills := rowDepth([]float64{dr.TargetArea, kit.TargetArea}, band.W, opts.MaxAspect)
		if grD+backD > band.D+eps ||
			(!grFills && rowOverflows(gr.TargetArea, grD, band.W)) ||
			(!backFills && rowOverflows(dr.TargetArea+kit.TargetArea, backD, band.W)) {
			return squarify(specs, band, opts.MaxAspect)
		}
		placed = append(placed, packRow([]plan.RoomSpec{*gr}, band.X, band.Y, band.W, grD, grFills, false)...)
		placed = append(placed, packRow([]plan.RoomSpec{*dr, *kit}, band.X, band.Y+grD, band.W, backD, backFills, false)...)
		frontMaxY = band.Y + grD + backD

	case gr != nil && kit != nil:
		mainD := (gr.TargetArea + kit.TargetArea) / band.W
		grW := gr.TargetArea / mainD
		kitW := kit.TargetArea / mainD
		sideOK := mainD <= band.D+eps && kitW >= 10 &&
			math.Max(kitW/mainD, mainD/kitW) <= opts.MaxAspect &&
			math.Max(grW/mainD, mainD/grW) <= opts.MaxAspect
		if sideOK {
			placed = append(placed, packRow([]plan.RoomSpec{*gr, *kit}, band.X, band.Y, band.W, mainD, true, false)...)
			frontMaxY = band.Y + mainD
			break
		}

		// Too narrow for side by side: great room across the front,
		// kitchen tucked behind it on the hall side.
		kitD := math.Max(kit.TargetArea/band.W, 10)
		if kit.TargetArea/(kitD*kitD) > opts.MaxAspect {
			kitD = math.Sqrt(kit.TargetArea / 2.0)
		}
		kitD = math.Min(kitD, 0.45*band.D)
		kitW = kit.TargetArea / kitD
		if kitW > band.W {
			kitW = band.W
			kitD = kit.TargetArea / kitW
		}
		grD, grFills := rowDepth([]float64{gr.TargetArea}, band.W, opts.MaxAspect)
		grD = math.Max(grD, 12)
		grD = math.Min(grD, 0.6*band.D)
		if grD+kitD > band.D+eps || (!grFills && rowOverflows(gr.TargetArea, grD, band.W)) {
			return squarify(specs, band, opts.MaxAspect)
		}
		placed = append(placed, packRow([]plan.RoomSpec{*gr}, band.X, band.Y, band.W, grD, grFills, false)...)
		placed = append(placed, plan.PlacedRoom{
			RoomSpec: *kit,
			Rect:     geometry.Rect{X: round2(band.X), Y: round2(band.Y + grD), W: round2(kitW), D: round2(kitD)},
		})
		frontMaxY = band.Y + grD + kitD

	default:
		only := gr
		if only == nil {
			only = kit
		}
		if only == nil {
			only = dr
		}
		d0, f0 := rowDepth([]float64{only.TargetArea}, band.W, opts.MaxAspect)
		d0 = math.Min(d0, band.D)
		if !f0 && rowOverflows(only.TargetArea, d0, band.W) {
			return squarify(specs, band, opts.MaxAspect)
		}
		placed = append(placed, packRow([]plan.RoomSpec{*only}, band.X, band.Y, band.W, d0, f0, false)...)
		frontMaxY = band.Y + d0
	}

	if len(small) == 0 {
		return placed
	}

	sort.SliceStable(small, func(i, j int) bool { return small[i].TargetArea > small[j].TargetArea })
	var smallTotal float64
	smallest := math.Inf(1)
	for i := range small {
		smallTotal += small[i].TargetArea
		smallest = math.Min(smallest, small[i].TargetArea)
	}

	serviceD := math.Max(smallTotal/band.W, 6)
	if maxD := 0.3 * band.D; serviceD > maxD {
		serviceD = math.Max(maxD, smallTotal/band.W)
	}
	// The 6 ft floor yields when it would push a tiny room past the
	// aspect bound.
	if hi := math.Sqrt(smallest * opts.MaxAspect); serviceD > hi {
		serviceD = math.Max(hi, smallTotal/band.W)
	}
	rowW := smallTotal / serviceD
	if frontMaxY+serviceD > band.MaxY()+eps || rowW > band.W+eps {
		return squarify(specs, band, opts.MaxAspect)
	}

	startX := band.X
	for i := range placed {
		if placed[i].Type == plan.TypeKitchen {
			startX = placed[i].X
			break
		}
	}
	startX = math.Min(startX, band.MaxX()-rowW)
	startX = math.Max(startX, band.X)
	placed = append(placed, packRow(small, startX, frontMaxY, rowW, serviceD, false, false)...)
	return placed
}
