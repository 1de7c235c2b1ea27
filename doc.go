// Package lakepath builds a value-free "shortest path to goal" policy for
// finite MDPs and measures how good it is.
//
// 🚀 What is lakepath?
//
//	A small, deterministic pipeline over grid-world MDPs such as FrozenLake:
//		• Model: states with a semantic Kind, one Action enum, MDP/Policy interfaces
//		• Boards: FrozenLake grids with optional slip, built-in 4×4 and 8×8 maps
//		• Policy: most-likely-successor graph + multi-source backward BFS
//		• Evaluation: Bellman update, exact LU solve, iterative evaluation
//		• Fitness: v(s₀) of the constructed policy
//		• Output: colored terminal board, HTML heatmap, SQLite run history
//
// ✨ Why?
//
//   - No training: the policy follows hop distances, not learned values
//   - Reproducible: fixed enumeration order and explicit tie-break order
//   - Checkable: exact and iterative evaluation agree within tolerance
//
// Packages:
//
//	mdp/        State, Action, MDP, Policy; Enumerate, BuildPolicyPr
//	lake/       FrozenLake boards (mdp.MDP + rewards)
//	bfs/        multi-source backward relaxation over an integer graph
//	policy/     graph builder and shortest-path policy extraction
//	matrix/     Dense matrices, LU factorization, linear solve
//	bellman/    Update, Exact, Iterative, Evaluate
//	fitness/    end-to-end run: policy → P, r → v → v(s₀)
//	render/     aurora terminal board, go-echarts heatmap
//	runstore/   SQLite history of runs
//	cmd/lakepath/ command-line front end
//
// Quick example (4×4, deterministic, γ = 0.9):
//
//	S → ↓ ←        fitness f = v(s0) = 0.590490
//	↓ H ↓ H
//	→ → ↓ H
//	H → → G
//
//	go run github.com/katalvlaran/lakepath/cmd/lakepath -map 4x4
package lakepath
