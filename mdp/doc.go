// Package mdp defines the finite Markov Decision Process vocabulary shared by
// every other package: states with a semantic Kind, the single Action
// enumeration, the MDP and Policy capability interfaces, deterministic state
// enumeration, and assembly of the policy-induced transition matrix and
// reward-on-entry vector.
//
// What
//
//   - State: comparable (Row, Col, Kind) triple, safe as a map key.
//   - Action: Up, Right, Down, Left plus Absorb for terminal states.
//   - MDP: Transition, IsTerminal, Actions, Start.
//   - Rewarder: Reward(s) is the reward for ENTERING s.
//   - Policy: Decide(s) and MDP().
//   - Enumerate / Index: fixed, duplicate-free ordering of reachable states.
//   - BuildPolicyPr: row-stochastic P and aligned r for a fixed policy.
//
// Determinism
//
//	Enumerate visits successors in the order the MDP lists them, and actions
//	in the order Actions returns them, so a deterministic MDP always yields
//	the same ordering and therefore the same matrix indices.
package mdp
