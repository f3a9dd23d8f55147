// Package floorpath routes people between stations spread over several
// floors of a building, and finds the nearest free station of a kind.
//
// 🚀 What is floorpath?
//
//	A small routing engine plus the plumbing around it:
//		• Cost model: walking seconds plus a fixed penalty per floor changed
//		• Graph builder: complete digraph over the free stations of a snapshot
//		• Shortest paths: Dijkstra with pluggable priority queues
//		• Multi-stop routes: strict-order legs, concatenated and summed
//		• Nearest match: filter by name and tags, rank by distance + floor penalty
//
// The engine packages are pure: every query takes a fresh node snapshot,
// builds what it needs and throws it away. State, logging and metrics live
// in source and service.
//
// Packages:
//
//	core/          Node, Edge and the immutable Graph
//	cost/          travel-cost model and its options
//	builder/       complete-graph construction with station filters
//	pq/            binary-heap and B-tree priority queues
//	dijkstra/      single-pair search and single-source distances
//	route/         ordered multi-leg planning
//	nearest/       one-hop nearest-station ranking
//	source/        node snapshots: in-memory store and YAML files
//	service/       Planner: source + engine + slog + Prometheus
//	config/        YAML settings
//	cmd/floorpath  command-line front end
//
// Quick ASCII example, two floors and one stair gap:
//
//	L2:        C
//	           ┆  (+20 s)
//	L1:  A ─── B
//
// A→C costs |AB|/1.3 m/s + 20 s with the default model.
package floorpath
