package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/pkg/io"
	"github.com/matzehuels/planforge/pkg/plan"
)

// inspectCommand creates the inspect command for summarizing a plan.
func (c *CLI) inspectCommand() *cobra.Command {
	var showDoors bool

	cmd := &cobra.Command{
		Use:   "inspect [plan.json]",
		Short: "Summarize a generated plan on the terminal",
		Long: `Summarize a generated plan on the terminal.

The inspect command prints the footprint, every placed room with its
dimensions and area, the hallway segments, aggregate quality scores, and
any warnings the engine recorded (unreachable rooms, blocked door swings,
fallback door placements).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := io.ImportJSON(args[0])
			if err != nil {
				return err
			}
			printPlanSummary(p, showDoors)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDoors, "doors", false, "list every door placement")

	return cmd
}

// printPlanSummary renders the full terminal summary of a plan.
func printPlanSummary(p *plan.FloorPlan, showDoors bool) {
	title := "Floor Plan"
	if p.Meta.PlanID != "" {
		title += " " + shortID(p.Meta.PlanID)
	}
	fmt.Println(StyleTitle.Render(title))
	printNewline()

	printKeyValue("Footprint", fmt.Sprintf("%.0f × %.0f ft (%.0f sqft)", p.Length, p.Width, p.Length*p.Width))
	printKeyValue("Rooms", fmt.Sprintf("%d (%.0f sqft)", p.Meta.RoomCount, p.Meta.RoomArea))
	printKeyValue("Hallways", fmt.Sprintf("%d (%.0f sqft)", p.Meta.HallwayCount, p.Meta.HallwayArea))
	printKeyValue("Doors", fmt.Sprintf("%d (%.1f per room)", len(p.Doors), p.Meta.Quality.DoorsPerRoom))
	printKeyValue("Fill", fmt.Sprintf("%.0f%% rooms, %.0f%% circulation",
		p.Meta.FillRatio*100, p.Meta.Quality.HallwayRatio*100))
	printKeyValue("Plumbing", fmt.Sprintf("%.2f", p.Meta.PlumbingScore))
	printKeyValue("Status", qualityStatus(p.Meta.Quality))
	printNewline()

	printRoomRows(p)
	if len(p.Hallways) > 0 {
		printNewline()
		printHallwayRows(p)
	}
	if showDoors {
		printNewline()
		printDoorRows(p)
	}

	printPlanWarnings(p)
}

// shortID trims a plan fingerprint for display.
func shortID(id string) string {
	if len(id) > 8 {
		return StyleDim.Render(id[:8])
	}
	return StyleDim.Render(id)
}

// qualityStatus renders the quality status with color.
func qualityStatus(q plan.QualityReport) string {
	if q.Status == plan.QualityGood {
		return StyleSuccess.Render(q.Status)
	}
	return StyleWarning.Render(q.Status)
}

var (
	rowNameStyle = lipgloss.NewStyle().Foreground(colorWhite).Width(20)
	rowZoneStyle = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// printRoomRows lists every placed room with zone, dimensions, and area.
func printRoomRows(p *plan.FloorPlan) {
	fmt.Println(StyleHighlight.Render("Rooms"))
	for _, r := range p.Rooms {
		dims := fmt.Sprintf("%5.1f × %-5.1f", r.W, r.D)
		area := fmt.Sprintf("%6.0f sqft", r.Area())
		tags := ""
		if r.Wet {
			tags = " " + StyleDim.Render("wet")
		}
		fmt.Println("  " + rowNameStyle.Render(r.Name) + rowZoneStyle.Render(string(r.Zone)) + StyleValue.Render(dims) + " " + StyleDim.Render(area) + tags)
	}
}

// printHallwayRows lists every hallway segment.
func printHallwayRows(p *plan.FloorPlan) {
	fmt.Println(StyleHighlight.Render("Hallways"))
	for _, h := range p.Hallways {
		dims := fmt.Sprintf("%5.1f × %-5.1f", h.W, h.D)
		fmt.Println("  " + rowNameStyle.Render(h.Name) + rowZoneStyle.Render(h.Role) + StyleValue.Render(dims))
	}
}

// printDoorRows lists every door placement.
func printDoorRows(p *plan.FloorPlan) {
	fmt.Println(StyleHighlight.Render("Doors"))
	for _, d := range p.Doors {
		link := fmt.Sprintf("%s %s %s", d.Room, iconArrow, d.ConnectsTo)
		width := fmt.Sprintf("%d\"", d.WidthIn)
		line := "  " + StyleValue.Render(link) + " " + StyleDim.Render(width)
		if !d.SwingClear {
			line += " " + StyleWarning.Render("swing blocked")
		}
		fmt.Println(line)
	}
}

// printPlanWarnings prints the soft findings recorded in plan metadata.
func printPlanWarnings(p *plan.FloorPlan) {
	var lines []string
	for _, name := range p.Meta.UnreachableRooms {
		lines = append(lines, fmt.Sprintf("%s is unreachable from circulation", name))
	}
	for _, d := range p.Doors {
		if !d.SwingClear {
			lines = append(lines, fmt.Sprintf("door %s %s %s cannot swing clear", d.Room, iconArrow, d.ConnectsTo))
		}
	}
	if p.Meta.FallbackDoors > 0 {
		lines = append(lines, fmt.Sprintf("%d doors placed by fallback rule", p.Meta.FallbackDoors))
	}
	lines = append(lines, p.Meta.Warnings...)
	lines = append(lines, p.Meta.Quality.Issues...)

	if len(lines) == 0 {
		return
	}
	printNewline()
	for _, l := range lines {
		printWarning("%s", l)
	}
}

// printQualityWarnings prints post-generation warnings, if any.
func printQualityWarnings(p *plan.FloorPlan) {
	count := len(p.Meta.UnreachableRooms) + len(p.Meta.Warnings) + len(p.Meta.Quality.Issues)
	for _, d := range p.Doors {
		if !d.SwingClear {
			count++
		}
	}
	if count == 0 {
		return
	}
	printDetail("%d warnings, see 'planforge inspect' for details", count)
}
