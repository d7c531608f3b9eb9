package program

import (
	"fmt"

	"github.com/matzehuels/planforge/pkg/plan"
)

// Template is the sizing envelope for one room kind: the minimum and
// target areas, minimum width, aspect bound, and plumbing/fixture needs
// the parser stamps onto generated RoomSpecs.
type Template struct {
	Name       string
	Type       plan.RoomType
	Zone       plan.Zone
	MinArea    float64
	TargetArea float64
	MinWidth   float64
	MaxAspect  float64
	Wet        bool
	Fixtures   []string
}

// Room templates. Areas in square feet, widths in feet. Aspect bounds
// tighter than the engine default keep bedrooms and baths livable even
// when the packer has room to sprawl.
var (
	masterBedroomTemplate = Template{
		Name: "Master_Bedroom", Type: plan.TypeBedroom, Zone: plan.ZoneMaster,
		MinArea: 168, TargetArea: 224, MinWidth: 12, MaxAspect: 1.5,
	}
	masterBathroomTemplate = Template{
		Name: "Master_Bathroom", Type: plan.TypeBathroom, Zone: plan.ZoneMaster,
		MinArea: 60, TargetArea: 80, MinWidth: 7, MaxAspect: 1.5,
		Wet: true, Fixtures: []string{"bathroom_tub"},
	}
	masterClosetTemplate = Template{
		Name: "Master_WIC", Type: plan.TypeCloset, Zone: plan.ZoneMaster,
		MinArea: 36, TargetArea: 48, MinWidth: 6, MaxAspect: 1.5,
	}
	greatRoomTemplate = Template{
		Name: "Great_Room", Type: plan.TypeGreatRoom, Zone: plan.ZoneCenter,
		MinArea: 300, TargetArea: 400, MinWidth: 16, MaxAspect: 1.5,
	}
	kitchenTemplate = Template{
		Name: "Kitchen", Type: plan.TypeKitchen, Zone: plan.ZoneService,
		MinArea: 120, TargetArea: 180, MinWidth: 10, MaxAspect: 1.5,
		Wet: true, Fixtures: []string{"kitchen_L"},
	}
	diningRoomTemplate = Template{
		Name: "Dining_Room", Type: plan.TypeDiningRoom, Zone: plan.ZoneCenter,
		MinArea: 100, TargetArea: 168, MinWidth: 10, MaxAspect: 1.5,
	}
	pantryTemplate = Template{
		Name: "Pantry", Type: plan.TypePantry, Zone: plan.ZoneService,
		MinArea: 20, TargetArea: 24, MinWidth: 4, MaxAspect: 2.0,
	}
	laundryTemplate = Template{
		Name: "Laundry", Type: plan.TypeLaundry, Zone: plan.ZoneService,
		MinArea: 42, TargetArea: 48, MinWidth: 6, MaxAspect: 1.5,
		Wet: true,
	}
	mudroomTemplate = Template{
		Name: "Mudroom", Type: plan.TypeMudroom, Zone: plan.ZoneService,
		MinArea: 42, TargetArea: 48, MinWidth: 6, MaxAspect: 1.5,
	}
)

// bedroomTemplate returns the template for secondary bedroom n (n >= 2).
func bedroomTemplate(n int) Template {
	return Template{
		Name: fmt.Sprintf("Bedroom_%d", n), Type: plan.TypeBedroom, Zone: plan.ZoneSecondary,
		MinArea: 120, TargetArea: 144, MinWidth: 10, MaxAspect: 1.4,
	}
}

// bathroomTemplate returns the template for secondary bathroom n (n >= 2).
func bathroomTemplate(n int) Template {
	return Template{
		Name: fmt.Sprintf("Bathroom_%d", n), Type: plan.TypeBathroom, Zone: plan.ZoneSecondary,
		MinArea: 40, TargetArea: 48, MinWidth: 5, MaxAspect: 1.8,
		Wet: true, Fixtures: []string{"bathroom_shower"},
	}
}

// areaCaps bounds post-scaling target areas per room type so oversized
// footprints produce generous rooms, not absurd ones.
var areaCaps = map[plan.RoomType]float64{
	plan.TypeBedroom:    250,
	plan.TypeBathroom:   120,
	plan.TypeCloset:     80,
	plan.TypeKitchen:    260,
	plan.TypeDiningRoom: 220,
	plan.TypeLaundry:    80,
	plan.TypeMudroom:    80,
	plan.TypePantry:     40,
}

// spec converts a template into the RoomSpec the parser emits.
func (t Template) spec() plan.RoomSpec {
	return plan.RoomSpec{
		Name:       t.Name,
		Type:       t.Type,
		Zone:       t.Zone,
		TargetArea: t.TargetArea,
		MinArea:    t.MinArea,
		MinWidth:   t.MinWidth,
		MaxAspect:  t.MaxAspect,
		Wet:        t.Wet,
		Fixtures:   t.Fixtures,
	}
}
