// Package orthogonal implements the Biedl–Kant orthogonal grid drawing.
//
// # st-Numbering
//
// The vertices of a cluster are first put into an st-order: a total order
// starting at s and ending at t, where (s, t) is an edge, in which every
// other vertex has both an earlier and a later neighbour. The order is built
// from a depth-first search whose first tree edge is (s, t): each vertex is
// spliced into a list immediately before or after its DFS parent, depending
// on a sign recorded on its lowpoint vertex.
//
// A cluster that is not biconnected has no st-order. Its blocks are found
// with Tarjan's algorithm, one vertex that is not a cut vertex is chosen
// from every leaf block, and a synthetic vertex adjacent to all of them is
// added. The augmented graph is biconnected; it is st-ordered from the
// synthetic vertex and the synthetic vertex is dropped again.
//
// # Grid Embedding
//
// Every edge is directed from its lower- to its higher-numbered endpoint
// and the vertices are placed one row apart in st-order. Each vertex takes
// the column of its median incoming edge; the other incoming edges bend
// into its sides. The middle outgoing edge leaves downward on the vertex's
// own column and the remaining outgoing edges get fresh columns inserted
// directly left and right of it. Columns are numbered only at the end.
//
// Grid units are scaled by [Options.GridWidth] and [Options.GridHeight], and
// every vertex is resized to [Options.NodeRatio] percent of a grid cell.
package orthogonal
