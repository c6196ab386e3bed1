package searching_test

import (
	"fmt"

	"github.com/jpcunhadias/ds-algo-lab/searching"
	"github.com/jpcunhadias/ds-algo-lab/seq"
)

// ExampleBinary narrates a binary search converging on its target.
func ExampleBinary() {
	arr := seq.NewArray(10, 20, 30, 40, 50, 60, 70, 80, 90)

	for step := range searching.Binary(arr, 70) {
		fmt.Printf("%d. %s\n", step.Number, step.Description)
	}
	// Output:
	// 1. Initializing search for 70
	// 2. Checking middle element at index 4: 50. Search range: [0..8]
	// 3. 50 < 70, so target must be in the right half. Updating search range to [5..8]
	// 4. Checking middle element at index 6: 70. Search range: [5..8]
	// 5. Found 70 at index 6
}

// ExampleExecute runs a search by registry name.
func ExampleExecute() {
	arr := seq.NewArray(10, 20, 30, 40, 50)

	steps, err := searching.Execute("linear_search", arr, 30, false)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	last := steps[len(steps)-1]
	fmt.Println(last.Description)
	fmt.Println("found at:", last.Detail.FoundIndex)
	// Output:
	// Found 30 at index 2
	// found at: 2
}
