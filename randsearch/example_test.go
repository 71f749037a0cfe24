package randsearch_test

import (
	"fmt"

	"github.com/katalvlaran/aiworkshop/randsearch"
)

// ExampleFindAvailable picks the only free computer in a lab.
func ExampleFindAvailable() {
	lab := []bool{false, false, true, false}
	idx, err := randsearch.FindAvailable(lab, randsearch.WithSeed(3))
	fmt.Println(idx, err)

	// Output:
	// 2 <nil>
}
