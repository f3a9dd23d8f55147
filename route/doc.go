// Package route composes shortest-path legs into strict-order routes.
//
// Given a node snapshot and an ordered waypoint list [w0, w1, …, wk], Plan
// builds one graph (builder.Build) and runs dijkstra.ShortestPath for every
// consecutive pair (wi, wi+1). The final path keeps the first leg whole and
// appends each later leg without its first node, so junction waypoints are
// not repeated. The route cost is the sum of leg costs.
//
// Outcomes:
//
//	Route{Outcome: Found, Path: …, Cost: Σ legs, Legs: […]}
//	Route{Outcome: Unreachable, Cost: +Inf}   // any leg unreachable
//
// Unknown waypoint IDs and invalid cost options are configuration errors and
// are reported before any graph is built. Waypoints that exist but are
// currently occupied are not errors; the route is simply Unreachable.
package route
