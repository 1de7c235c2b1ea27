package bellman_test

import (
	"fmt"

	"github.com/katalvlaran/lakepath/bellman"
	"github.com/katalvlaran/lakepath/matrix"
)

// ExampleEvaluate values a two-state chain where state 0 pays 1 on entering
// state 1, which then loops forever at no reward.
func ExampleEvaluate() {
	P, _ := matrix.NewDenseFrom([][]float64{
		{0, 1},
		{0, 1},
	})
	r := []float64{1, 0}

	ev, err := bellman.Evaluate(bellman.MethodExact, P, r, 0.9)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f %.2f\n", ev.V[0], ev.V[1])

	_, err = bellman.Evaluate("bogus", P, r, 0.9)
	fmt.Println(err)
	// Output:
	// 1.00 0.00
	// bellman: unknown method "bogus"
}
