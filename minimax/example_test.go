package minimax_test

import (
	"fmt"

	"github.com/katalvlaran/aiworkshop/minimax"
)

func ExampleScores() {
	b, _ := minimax.ParseBoard([]string{
		"XO.",
		"XO.",
		"...",
	})
	for _, ms := range minimax.Scores(b) {
		fmt.Println(ms.Move, ms.Score)
	}
	// Output:
	// (0,2) -1
	// (1,2) -1
	// (2,0) 1
	// (2,1) 0
	// (2,2) -1
}
