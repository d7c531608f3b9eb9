package layout

import (
	"github.com/matzehuels/planforge/pkg/geometry"
	"github.com/matzehuels/planforge/pkg/plan"
)

// CircNode is one node of a circulation graph.
type CircNode struct {
	Name    string
	Hallway bool
}

// CircEdge is one passable opening between two nodes. Door marks edges
// carried by a placed door rather than plain wall adjacency.
type CircEdge struct {
	From string
	To   string
	Door bool
}

// CirculationGraph is the reachability graph of a plan: rooms and
// hallway segments as nodes, passable openings as edges. An opening is
// passable when the shared wall is long enough for the door the pair
// would take.
type CirculationGraph struct {
	nodes []CircNode
	index map[string]int
	adj   [][]int
	edges []CircEdge
	ekeys map[[2]int]int
}

// BuildCirculationGraph builds the graph for a set of placed rooms and
// hallways. Doors may be nil: before door placement the graph is purely
// geometric, afterwards each placed door contributes (or confirms) an
// edge.
func BuildCirculationGraph(rooms []plan.PlacedRoom, halls []plan.HallwaySegment, doors []plan.DoorPlacement, tol float64) *CirculationGraph {
	g := &CirculationGraph{
		index: make(map[string]int),
		ekeys: make(map[[2]int]int),
	}
	for i := range rooms {
		g.addNode(rooms[i].Name, false)
	}
	for i := range halls {
		g.addNode(halls[i].Name, true)
	}

	all := make([]plan.PlacedRoom, 0, len(rooms)+len(halls))
	all = append(all, rooms...)
	for i := range halls {
		all = append(all, hallwayRoom(&halls[i]))
	}

	for i := range all {
		for j := i + 1; j < len(all); j++ {
			a, b := &all[i], &all[j]
			if geometry.SharedEdgeLength(a.Rect, b.Rect, tol) < passableSpan(a, b) {
				continue
			}
			g.addEdge(a.Name, b.Name, false)
		}
	}
	for i := range doors {
		g.addEdge(doors[i].Room, doors[i].ConnectsTo, true)
	}
	return g
}

// passableSpan is the shared wall length a pair needs before an opening
// can join it, in feet.
func passableSpan(a, b *plan.PlacedRoom) float64 {
	if a.Type == plan.TypeHallway && b.Type == plan.TypeHallway {
		return float64(plan.DoorWidthCloset) / 12
	}
	return float64(widthInForPair(a, b)) / 12
}

// hallwayRoom wraps a hallway segment as a pseudo-room so door and
// adjacency rules can treat it uniformly.
func hallwayRoom(h *plan.HallwaySegment) plan.PlacedRoom {
	return plan.PlacedRoom{
		RoomSpec: plan.RoomSpec{Name: h.Name, Type: plan.TypeHallway, Zone: plan.ZoneCirculation},
		Rect:     h.Rect,
	}
}

func (g *CirculationGraph) addNode(name string, hall bool) {
	if _, ok := g.index[name]; ok {
		return
	}
	g.index[name] = len(g.nodes)
	g.nodes = append(g.nodes, CircNode{Name: name, Hallway: hall})
	g.adj = append(g.adj, nil)
}

func (g *CirculationGraph) addEdge(from, to string, door bool) {
	i, ok := g.index[from]
	if !ok {
		return
	}
	j, ok := g.index[to]
	if !ok {
		return
	}
	if i == j {
		return
	}
	key := [2]int{i, j}
	if i > j {
		key = [2]int{j, i}
	}
	if at, ok := g.ekeys[key]; ok {
		if door {
			g.edges[at].Door = true
		}
		return
	}
	g.ekeys[key] = len(g.edges)
	g.edges = append(g.edges, CircEdge{From: from, To: to, Door: door})
	g.adj[i] = append(g.adj[i], j)
	g.adj[j] = append(g.adj[j], i)
}

// Nodes returns the graph nodes in insertion order: rooms first, then
// hallway segments.
func (g *CirculationGraph) Nodes() []CircNode {
	out := make([]CircNode, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns the graph edges in discovery order.
func (g *CirculationGraph) Edges() []CircEdge {
	out := make([]CircEdge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Unreachable returns the names of rooms with no path to any hallway,
// in input order. A plan with no hallways reports every room.
func (g *CirculationGraph) Unreachable() []string {
	seen := make([]bool, len(g.nodes))
	var queue []int
	for i := range g.nodes {
		if g.nodes[i].Hallway {
			seen[i] = true
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range g.adj[cur] {
			if !seen[nb] {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	var out []string
	for i := range g.nodes {
		if !g.nodes[i].Hallway && !seen[i] {
			out = append(out, g.nodes[i].Name)
		}
	}
	return out
}
