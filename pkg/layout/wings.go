package layout

import (
	"math"
	"sort"

	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

// packWing lays out a private wing band. A wing holding the master
// bedroom fronts it across the full width with the bathroom and closet
// in a rear row; a secondary wing fronts its bedrooms and tucks
// bathrooms and leftovers behind them. hallOnRight packs rear rows
// against the right edge so the largest rear room lands nearest the
// zone hallway.
func packWing(specs []plan.RoomSpec, band geometry.Rect, opts *Options, hallOnRight bool) []plan.PlacedRoom {
	for i := range specs {
		if specs[i].Name == "Master_Bedroom" {
			return packMasterWing(specs, i, band, opts, hallOnRight)
		}
	}
	return packSecondaryWing(specs, band, opts, hallOnRight)
}

// packMasterWing places the master bedroom across the full wing width
// at the front and the suite's bathroom and closet in a rear row.
func packMasterWing(specs []plan.RoomSpec, masterIdx int, band geometry.Rect, opts *Options, hallOnRight bool) []plan.PlacedRoom {
	master := specs[masterIdx]
	var rear []plan.RoomSpec
	for i := range specs {
		if i != masterIdx {
			rear = append(rear, specs[i])
		}
	}
	sort.SliceStable(rear, func(i, j int) bool { return rear[i].TargetArea > rear[j].TargetArea })

	masterD := math.Max(master.TargetArea/band.W, band.W/opts.MaxAspect)
	masterD = math.Max(masterD, 8)
	if len(rear) > 0 {
		masterD = math.Min(masterD, band.D-6)
	} else {
		masterD = math.Min(masterD, band.D)
	}

	placed := packRow([]plan.RoomSpec{master}, band.X, band.Y, band.W, masterD, true, false)
	if len(rear) == 0 {
		return placed
	}

	areas := make([]float64, len(rear))
	var rearTotal float64
	for i := range rear {
		areas[i] = rear[i].TargetArea
		rearTotal += areas[i]
	}
	rearD, rearFills := rowDepth(areas, band.W, opts.MaxAspect)
	if !rearFills && rowOverflows(rearTotal, rearD, band.W) {
		return squarify(specs, band, opts.MaxAspect)
	}
	avail := band.D - masterD
	if rearD > avail+eps {
		if avail < 4 || rearTotal/avail > band.W+eps {
			return squarify(specs, band, opts.MaxAspect)
		}
		rearD = avail
		rearFills = rearTotal/rearD >= band.W-0.25
	}
	placed = append(placed, packRow(rear, band.X, band.Y+masterD, band.W, rearD, rearFills, hallOnRight)...)
	return placed
}

// packSecondaryWing places bedrooms in a front row and everything else
// in a rear row behind them.
func packSecondaryWing(specs []plan.RoomSpec, band geometry.Rect, opts *Options, hallOnRight bool) []plan.PlacedRoom {
	var beds, small []plan.RoomSpec
	for _, s := range specs {
		if s.Type == plan.TypeBedroom {
			beds = append(beds, s)
		} else {
			small = append(small, s)
		}
	}
	if len(beds) == 0 {
		return squarify(specs, band, opts.MaxAspect)
	}
	sort.SliceStable(beds, func(i, j int) bool { return beds[i].TargetArea > beds[j].TargetArea })
	sort.SliceStable(small, func(i, j int) bool { return small[i].TargetArea > small[j].TargetArea })

	bedAreas := make([]float64, len(beds))
	var bedTotal float64
	for i := range beds {
		bedAreas[i] = beds[i].TargetArea
		bedTotal += bedAreas[i]
	}
	bedD, bedFills := rowDepth(bedAreas, band.W, opts.MaxAspect)
	if bedD > band.D+eps || (!bedFills && rowOverflows(bedTotal, bedD, band.W)) {
		return squarify(specs, band, opts.MaxAspect)
	}
	placed := packRow(beds, band.X, band.Y, band.W, bedD, bedFills, hallOnRight)
	if len(small) == 0 {
		return placed
	}

	smallAreas := make([]float64, len(small))
	var smallTotal float64
	for i := range small {
		smallAreas[i] = small[i].TargetArea
		smallTotal += smallAreas[i]
	}
	smallD, smallFills := rowDepth(smallAreas, band.W, opts.MaxAspect)
	if bedD+smallD > band.D+eps || (!smallFills && rowOverflows(smallTotal, smallD, band.W)) {
		return squarify(specs, band, opts.MaxAspect)
	}
	placed = append(placed, packRow(small, band.X, band.Y+bedD, band.W, smallD, smallFills, hallOnRight)...)
	return placed
}
