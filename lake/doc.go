// Package lake provides a FrozenLake grid world as an mdp.MDP.
//
// A board is a rectangular set of rows over the letters
//
//	S  start (exactly one)
//	F  frozen, walkable ('.' is accepted as an alias)
//	H  hole, terminal
//	G  goal, terminal
//
// Moves that would leave the board keep the agent in place. Terminal cells
// offer the single action mdp.Absorb, which drains into mdp.Sink; the sink
// absorbs into itself. Rewards follow the reward-on-entry convention: entering
// G pays the goal reward (1 by default), entering H pays the hole reward,
// every other entry pays the step reward, and entering the sink pays 0.
//
// Slippery ice
//
//	WithSlip(p) keeps the intended move with probability 1−p and splits p
//	evenly between the two perpendicular moves. Outcomes are listed intended
//	first, then clockwise, then counter-clockwise; outcomes that land on the
//	same cell are merged at the position of their first occurrence.
package lake
