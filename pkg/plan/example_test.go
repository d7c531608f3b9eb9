package plan_test

import (
	"fmt"

	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

func ExampleWallSegment_Spans() {
	// A 20 ft wall with a 3 ft door opening at 8 ft.
	wall := plan.WallSegment{
		Axis: geometry.AxisX,
		Pos:  12,
		Lo:   0,
		Hi:   20,
		Gaps: []plan.Gap{{Lo: 8, Hi: 11}},
	}

	for _, s := range wall.Spans() {
		fmt.Printf("solid run %.0f-%.0f\n", s.Lo, s.Hi)
	}
	// Output:
	// solid run 0-8
	// solid run 11-20
}

func ExampleDoorPlacement_SwingInto() {
	door := plan.DoorPlacement{
		Room:       "Bedroom_2",
		ConnectsTo: "Hall_1",
		WidthIn:    plan.DoorWidthPassage,
	}

	fmt.Println("swings into:", door.SwingInto())
	fmt.Printf("leaf width: %.2f ft\n", door.WidthFt())
	// Output:
	// swings into: Bedroom_2
	// leaf width: 2.67 ft
}
