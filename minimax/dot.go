package minimax

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"

	"github.com/minmaxcheckers/game"
)

const graphName = "search"

// DotTracer records the top plies of a search tree as a graphviz graph.
// Only the last search depth tried is kept.
type DotTracer struct {
	// Plies is how many plies below the root are recorded. Trees grow
	// exponentially, so keep this small.
	Plies int

	graph     *gographviz.Graph
	ids       map[*game.Board]string
	rootDepth int
	err       error
}

func NewDotTracer(plies int) *DotTracer {
	return &DotTracer{Plies: plies}
}

// Begin implements Tracer.
func (t *DotTracer) Begin(root *game.Board, depth int) {
	t.graph = gographviz.NewGraph()
	t.ids = make(map[*game.Board]string)
	t.rootDepth = depth
	t.err = nil
	if err := t.graph.SetName(graphName); err != nil {
		t.err = errors.WithStack(err)
		return
	}
	if err := t.graph.SetDir(true); err != nil {
		t.err = errors.WithStack(err)
		return
	}
	t.node(root, fmt.Sprintf("root\n%v to move", root.Turn))
}

// Edge implements Tracer.
func (t *DotTracer) Edge(parent, child *game.Board, m game.Move, value float32, depth int) {
	if t.graph == nil || t.err != nil || t.rootDepth-depth >= t.Plies {
		return
	}
	from := t.node(parent, "")
	to := t.node(child, "")
	if t.err != nil {
		return
	}
	attrs := map[string]string{"label": strconv.Quote(fmt.Sprintf("%v\n%.4g", m, value))}
	if err := t.graph.AddEdge(from, to, true, attrs); err != nil {
		t.err = errors.WithStack(err)
	}
}

// node returns the id of b, adding it to the graph on first sight.
func (t *DotTracer) node(b *game.Board, label string) string {
	if id, ok := t.ids[b]; ok {
		return id
	}
	id := "n" + strconv.Itoa(len(t.ids))
	t.ids[b] = id
	attrs := map[string]string{}
	if label != "" {
		attrs["label"] = strconv.Quote(label)
	}
	if err := t.graph.AddNode(graphName, id, attrs); err != nil && t.err == nil {
		t.err = errors.WithStack(err)
	}
	return id
}

// Nodes returns how many boards are in the graph.
func (t *DotTracer) Nodes() int { return len(t.ids) }

// String renders the graph in DOT.
func (t *DotTracer) String() string {
	if t.graph == nil {
		return ""
	}
	return t.graph.String()
}

// Err returns the first error met while building the graph.
func (t *DotTracer) Err() error { return t.err }
