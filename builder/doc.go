// Package builder constructs deterministic core.Graph fixtures for the
// colouring engine, its tests, benchmarks and the CLI.
//
// Components:
//
//   - BuildGraph / Apply:  run Constructors over a new or existing graph.
//   - Topologies with known colouring bounds:
//     – Complete(n):            χ = n
//     – Cycle(n):               χ = 2 for even n, 3 for odd n
//     – Path(n), Grid(r,c):     χ = 2
//     – Star(n):                χ = 2, hub "Center"
//     – Wheel(n):               χ = 3 for even rim, 4 for odd rim
//     – CompleteBipartite(a,b): χ = 2
//     – Crown(n):               χ = 2, adversarial for greedy orders
//     – RandomSparse(n,p):      G(n,p), needs WithSeed or WithRand
//   - ByName: family lookup for string-driven callers.
//   - Options: WithIDScheme, WithSeed, WithRand, WithPartitionPrefix and
//     ID-scheme shorthands (WithPaddedIDs, WithSymbNumb, ...).
//
// Guarantees:
//
//   - Same constructor, options and seed give the same graph, including the
//     order in which edges were inserted.
//   - Option constructors panic on meaningless input; Constructors return
//     errors wrapping ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource or ErrConstructFailed.
package builder
