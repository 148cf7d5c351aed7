// Package force implements the GEM force-directed layout.
//
// GEM (Frick, Ludwig, Mehldau) is a spring embedder in which every vertex
// carries its own temperature. A vertex that keeps moving in the same
// direction heats up and takes longer steps; one that oscillates or rotates
// cools down. This converges faster than a global cooling schedule and
// yields symmetric drawings with uniform edge lengths.
//
// # Simulation
//
// Each connected cluster runs independently for at most min(3·n², 1000)
// rounds, or until the total squared temperature falls below
// n·(0.05·distance)². A round visits the vertices in a fresh random
// permutation. The impulse on a vertex is the sum of
//
//   - a small random jitter,
//   - gravity toward the cluster barycenter, scaled by mass = 1 + degree/3,
//   - repulsion from every other vertex, distance²/(|d|²·mass) along d,
//   - attraction along each incident edge, |d|²/(distance²·mass) along -d.
//
// The impulse is normalized and the vertex moves by impulse × temperature.
//
// # Axis Locks
//
// With [Options.HonorLock] set, a node that is not movable along an axis
// keeps that coordinate. The impulse is still computed in full, so locked
// vertices keep pulling on the rest of the cluster.
//
// # Usage
//
//	opts := force.DefaultOptions()
//	opts.Distance = 80
//	stats, err := force.Layout(ctx, d, opts)
package force
