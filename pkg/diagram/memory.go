package diagram

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/matzehuels/graphlayout/pkg/geom"
)

var (
	// ErrDuplicateID is returned by [Memory.AddNode] and [Memory.AddLink]
	// when an item with the same ID already exists.
	ErrDuplicateID = errors.New("duplicate item ID")

	// ErrUnknownNode is returned by [Memory.AddLink] when an endpoint does
	// not name an existing node.
	ErrUnknownNode = errors.New("unknown node")

	// ErrUnbalancedUpdate is reported by [Memory.Err] when EndUpdate was
	// called without a matching BeginUpdate.
	ErrUnbalancedUpdate = errors.New("EndUpdate without BeginUpdate")
)

// Point is the JSON form of a link point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData is the serialized form of a [MemNode].
type NodeData struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	W        float64 `json:"w"`
	H        float64 `json:"h"`
	LockX    bool    `json:"lock_x,omitempty"`
	LockY    bool    `json:"lock_y,omitempty"`
	Excluded bool    `json:"excluded,omitempty"`
}

// LinkData is the serialized form of a [MemLink].
type LinkData struct {
	ID                    string  `json:"id"`
	From                  string  `json:"from"`
	To                    string  `json:"to"`
	Points                []Point `json:"points,omitempty"`
	Excluded              bool    `json:"excluded,omitempty"`
	Pinned                bool    `json:"pinned,omitempty"`
	Polyline              bool    `json:"polyline,omitempty"`
	AdjustableOrigin      bool    `json:"adjustable_origin,omitempty"`
	AdjustableDestination bool    `json:"adjustable_destination,omitempty"`
}

// Document is the serialized form of a [Memory] diagram.
type Document struct {
	Nodes []NodeData `json:"nodes"`
	Links []LinkData `json:"links"`
}

// MemNode is the in-memory [Node] implementation.
type MemNode struct {
	d NodeData
}

func (n *MemNode) ID() string           { return n.d.ID }
func (n *MemNode) Bounds() geom.Rect    { return geom.Rect{X: n.d.X, Y: n.d.Y, W: n.d.W, H: n.d.H} }
func (n *MemNode) Movable() (x, y bool) { return !n.d.LockX, !n.d.LockY }
func (n *MemNode) Excluded() bool       { return n.d.Excluded }

func (n *MemNode) SetPosition(x, y float64) { n.d.X, n.d.Y = x, y }
func (n *MemNode) SetSize(w, h float64)     { n.d.W, n.d.H = w, h }

// SetLocked pins the node along the given axes.
func (n *MemNode) SetLocked(x, y bool) { n.d.LockX, n.d.LockY = x, y }

// SetExcluded keeps the node out of layout.
func (n *MemNode) SetExcluded(v bool) { n.d.Excluded = v }

// Data returns a copy of the node's serialized form.
func (n *MemNode) Data() NodeData { return n.d }

// MemLink is the in-memory [Link] implementation.
type MemLink struct {
	d        LinkData
	from, to *MemNode
}

func (l *MemLink) ID() string        { return l.d.ID }
func (l *MemLink) Origin() Node      { return l.from }
func (l *MemLink) Destination() Node { return l.to }
func (l *MemLink) Excluded() bool    { return l.d.Excluded }
func (l *MemLink) Pinned() bool      { return l.d.Pinned }

func (l *MemLink) Points() []geom.Point {
	pts := make([]geom.Point, len(l.d.Points))
	for i, p := range l.d.Points {
		pts[i] = geom.Pt(p.X, p.Y)
	}
	return pts
}

func (l *MemLink) SetPolyline() { l.d.Polyline = true }
func (l *MemLink) ClearPoints() { l.d.Points = nil }

func (l *MemLink) AddPoint(p geom.Point) {
	l.d.Points = append(l.d.Points, Point{X: p.X, Y: p.Y})
}

// SetPoint overwrites point i. Indices past the end append.
func (l *MemLink) SetPoint(i int, p geom.Point) {
	if i >= len(l.d.Points) {
		l.AddPoint(p)
		return
	}
	l.d.Points[i] = Point{X: p.X, Y: p.Y}
}

func (l *MemLink) SetAdjustable(origin, destination bool) {
	l.d.AdjustableOrigin, l.d.AdjustableDestination = origin, destination
}

// SetPinned marks the link's points as fixed.
func (l *MemLink) SetPinned(v bool) { l.d.Pinned = v }

// SetExcluded keeps the link out of layout.
func (l *MemLink) SetExcluded(v bool) { l.d.Excluded = v }

// Data returns a copy of the link's serialized form.
func (l *MemLink) Data() LinkData {
	d := l.d
	d.Points = append([]Point(nil), l.d.Points...)
	return d
}

// Memory is an in-process [Diagram]. Items are returned nodes first, then
// links, each in insertion order.
//
// Memory is not safe for concurrent use.
type Memory struct {
	nodes []*MemNode
	links []*MemLink
	byID  map[string]*MemNode
	ids   map[string]bool

	depth   int
	commits int
	err     error
}

// NewMemory returns an empty diagram.
func NewMemory() *Memory {
	return &Memory{byID: map[string]*MemNode{}, ids: map[string]bool{}}
}

// FromDocument builds a diagram from its serialized form.
func FromDocument(doc Document) (*Memory, error) {
	m := NewMemory()
	for _, nd := range doc.Nodes {
		n, err := m.AddNode(nd.ID, geom.Rect{X: nd.X, Y: nd.Y, W: nd.W, H: nd.H})
		if err != nil {
			return nil, err
		}
		n.d = nd
	}
	for _, ld := range doc.Links {
		l, err := m.AddLink(ld.ID, ld.From, ld.To)
		if err != nil {
			return nil, err
		}
		id := l.d.ID
		l.d = ld
		l.d.ID = id
		l.d.Points = append([]Point(nil), ld.Points...)
	}
	return m, nil
}

// AddNode appends a node with the given bounds.
func (m *Memory) AddNode(id string, r geom.Rect) (*MemNode, error) {
	if m.ids[id] {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	n := &MemNode{d: NodeData{ID: id, X: r.X, Y: r.Y, W: r.W, H: r.H}}
	m.nodes = append(m.nodes, n)
	m.byID[id] = n
	m.ids[id] = true
	return n, nil
}

// AddLink appends a link between two existing nodes. An empty id is
// replaced by "from->to" with a numeric suffix when needed.
func (m *Memory) AddLink(id, from, to string) (*MemLink, error) {
	src, ok := m.byID[from]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, from)
	}
	dst, ok := m.byID[to]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, to)
	}
	if id == "" {
		id = from + "->" + to
		for i := 2; m.ids[id]; i++ {
			id = fmt.Sprintf("%s->%s#%d", from, to, i)
		}
	}
	if m.ids[id] {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	l := &MemLink{d: LinkData{ID: id, From: from, To: to}, from: src, to: dst}
	m.links = append(m.links, l)
	m.ids[id] = true
	return l, nil
}

// Node returns the node with the given ID, or nil.
func (m *Memory) Node(id string) *MemNode { return m.byID[id] }

// Link returns the link with the given ID, or nil.
func (m *Memory) Link(id string) *MemLink {
	for _, l := range m.links {
		if l.d.ID == id {
			return l
		}
	}
	return nil
}

// NodeList returns the nodes in insertion order.
func (m *Memory) NodeList() []*MemNode { return m.nodes }

// LinkList returns the links in insertion order.
func (m *Memory) LinkList() []*MemLink { return m.links }

// Items implements [Diagram].
func (m *Memory) Items() []Item {
	items := make([]Item, 0, len(m.nodes)+len(m.links))
	for _, n := range m.nodes {
		items = append(items, n)
	}
	for _, l := range m.links {
		items = append(items, l)
	}
	return items
}

// BeginUpdate implements [Diagram].
func (m *Memory) BeginUpdate() { m.depth++ }

// EndUpdate implements [Diagram].
func (m *Memory) EndUpdate() {
	if m.depth == 0 {
		m.err = ErrUnbalancedUpdate
		return
	}
	m.depth--
	if m.depth == 0 {
		m.commits++
	}
}

// Commits returns how many outermost update brackets have been closed.
func (m *Memory) Commits() int { return m.commits }

// InUpdate reports whether an update bracket is open.
func (m *Memory) InUpdate() bool { return m.depth > 0 }

// Err returns the first bracket misuse observed, if any.
func (m *Memory) Err() error { return m.err }

// Document returns the serialized form of the diagram.
func (m *Memory) Document() Document {
	doc := Document{
		Nodes: make([]NodeData, len(m.nodes)),
		Links: make([]LinkData, len(m.links)),
	}
	for i, n := range m.nodes {
		doc.Nodes[i] = n.Data()
	}
	for i, l := range m.links {
		doc.Links[i] = l.Data()
	}
	return doc
}

// Clone returns a deep copy of the diagram without its update history.
func (m *Memory) Clone() *Memory {
	c, err := FromDocument(m.Document())
	if err != nil {
		// A valid diagram always round-trips.
		panic(err)
	}
	return c
}

// MarshalJSON encodes the diagram as a [Document].
func (m *Memory) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Document())
}

// UnmarshalJSON replaces the diagram with a decoded [Document].
func (m *Memory) UnmarshalJSON(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	fresh, err := FromDocument(doc)
	if err != nil {
		return err
	}
	*m = *fresh
	return nil
}
