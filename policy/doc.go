// Package policy constructs a deterministic, value-free "shortest path to
// goal" policy for any finite MDP.
//
// What
//
//   - MostLikelySuccessor collapses each (state, action) pair to the outcome
//     with the highest probability (first listed wins ties).
//   - BuildGraph turns those collapses into a directed bfs.Graph over the
//     enumerated states.
//   - Build seeds bfs.Relax at every Goal and Absorbing state, freezes every
//     terminal, and for each non-terminal state picks the legal action whose
//     most-likely successor is closest to a goal. Holes count as unreachable.
//
// Determinism
//
//	Ties between equally distant actions are broken by a fixed order
//	(default Right, Down, Left, Up) configurable through WithTieBreak, so two
//	builds over the same model yield bit-identical mappings.
//
// Complexity (V = enumerated states, A = actions per state, K = outcomes)
//
//   - Time:   O(V·A·K) to enumerate and collapse, O(V + E) to relax.
//   - Memory: O(V·A).
//
// Usage
//
//	pi, err := policy.Build(model,
//	    policy.WithTieBreak(mdp.Down, mdp.Right, mdp.Left, mdp.Up),
//	    policy.WithLogger(logger),
//	)
//	a := pi.Decide(model.Start())
//
// Errors
//
//   - mdp.ErrMDPNil            if the model is nil.
//   - ErrOptionViolation       for an invalid tie-break order.
//   - bfs errors from graph construction (never for a consistent model).
package policy
