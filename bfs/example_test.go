package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lakepath/bfs"
)

// ExampleRelax computes steps-to-goal on a 3×3 grid where every cell may
// move right or down, with the goal in the bottom-right corner.
func ExampleRelax() {
	g, _ := bfs.NewGraph(9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_ = g.AddEdge(i*3+j, i*3+j+1)
			}
			if i+1 < 3 {
				_ = g.AddEdge(i*3+j, (i+1)*3+j)
			}
		}
	}

	res, err := bfs.Relax(g, []int{8})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Depth)
	path, _ := res.PathTo(0)
	fmt.Println(path)
	// Output:
	// [4 3 2 3 2 1 2 1 0]
	// [0 1 2 5 8]
}
