package layout

import (
	"math"
	"sort"

	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

// treeItem pairs a spec with its possibly rescaled packing area.
type treeItem struct {
	spec plan.RoomSpec
	area float64
}

// squarify packs specs into bbox with the squarified treemap heuristic
// (Bruls, Huizing, van Wijk): rooms sorted by descending area, a row
// grown while its worst cell aspect does not degrade, each row laid
// along the shorter side of the remaining box. Rooms keep their target
// areas when the box is larger than their sum and shrink uniformly when
// it is not, so a roomy box ends up with slack rather than inflated
// rooms.
//
// A post pass reshapes any cell wider than maxAspect toward 2:1 within
// the box, holding a 5 ft minimum side.
func squarify(specs []plan.RoomSpec, bbox geometry.Rect, maxAspect float64) []plan.PlacedRoom {
	var total float64
	for i := range specs {
		total += specs[i].TargetArea
	}
	if total <= 0 || bbox.Area() <= 0 {
		return nil
	}

	scale := 1.0
	if total > bbox.Area() {
		scale = bbox.Area() / total
	}

	items := make([]treeItem, len(specs))
	for i := range specs {
		items[i] = treeItem{spec: specs[i], area: specs[i].TargetArea * scale}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].area > items[j].area })

	var placed []plan.PlacedRoom
	treemapRow(items, bbox, &placed)
	clampAspects(placed, bbox, maxAspect)
	return placed
}

// treemapRow peels one row off the item list, lays it along the shorter
// side of box, and recurses on the remainder.
func treemapRow(items []treeItem, box geometry.Rect, placed *[]plan.PlacedRoom) {
	if len(items) == 0 || box.W <= eps || box.D <= eps {
		return
	}

	shorter := math.Min(box.W, box.D)

	row := 1
	worst := worstRowRatio(items[:row], shorter)
	for row < len(items) {
		next := worstRowRatio(items[:row+1], shorter)
		if next > worst {
			break
		}
		row++
		worst = next
	}

	var rowArea float64
	for _, it := range items[:row] {
		rowArea += it.area
	}

	if box.D <= box.W {
		// Shorter side is vertical: the row is a column on the left.
		colW := rowArea / box.D
		y := box.Y
		for _, it := range items[:row] {
			d := it.area / colW
			*placed = append(*placed, plan.PlacedRoom{
				RoomSpec: it.spec,
				Rect:     geometry.Rect{X: round2(box.X), Y: round2(y), W: round2(colW), D: round2(d)},
			})
			y += d
		}
		treemapRow(items[row:], geometry.Rect{X: box.X + colW, Y: box.Y, W: box.W - colW, D: box.D}, placed)
	} else {
		rowD := rowArea / box.W
		x := box.X
		for _, it := range items[:row] {
			w := it.area / rowD
			*placed = append(*placed, plan.PlacedRoom{
				RoomSpec: it.spec,
				Rect:     geometry.Rect{X: round2(x), Y: round2(box.Y), W: round2(w), D: round2(rowD)},
			})
			x += w
		}
		treemapRow(items[row:], geometry.Rect{X: box.X, Y: box.Y + rowD, W: box.W, D: box.D - rowD}, placed)
	}
}

// worstRowRatio is the worst cell aspect a row of the given areas would
// have when spanning side.
func worstRowRatio(items []treeItem, side float64) float64 {
	var total float64
	for _, it := range items {
		total += it.area
	}
	if total <= eps || side <= eps {
		return math.Inf(1)
	}
	thickness := total / side
	worst := 0.0
	for _, it := range items {
		length := it.area / thickness
		if length <= eps {
			continue
		}
		worst = math.Max(worst, math.Max(length/thickness, thickness/length))
	}
	return worst
}

// clampAspects reshapes cells wider than maxAspect toward 2:1 keeping
// their area, with a 5 ft livability floor per side. The box bound is
// applied last so a reshaped cell never leaves the zone.
func clampAspects(placed []plan.PlacedRoom, box geometry.Rect, maxAspect float64) {
	const targetRatio = 2.0

	for i := range placed {
		r := &placed[i]
		w, d := r.W, r.D
		if w <= eps || d <= eps {
			continue
		}
		if math.Max(w/d, d/w) <= maxAspect {
			continue
		}
		area := w * d
		if w > d {
			d = math.Sqrt(area / targetRatio)
			w = area / d
		} else {
			w = math.Sqrt(area / targetRatio)
			d = area / w
		}
		w = math.Min(math.Max(w, 5), box.MaxX()-r.X)
		d = math.Min(math.Max(d, 5), box.MaxY()-r.Y)
		r.W = round2(w)
		r.D = round2(d)
	}
}
