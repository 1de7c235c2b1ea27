package fitness_test

import (
	"fmt"

	"github.com/katalvlaran/lakepath/fitness"
	"github.com/katalvlaran/lakepath/lake"
)

func ExampleRun() {
	l, _ := lake.Parse(lake.Map4x4)
	res, err := fitness.Run(l, 0.9)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("fitness f = v(s0) = %.6f\n", res.Fitness)
	// Output:
	// fitness f = v(s0) = 0.590490
}
