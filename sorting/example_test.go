package sorting_test

import (
	"fmt"

	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/sorting"
)

// ExampleBubble walks the full narration of a three-element bubble sort.
func ExampleBubble() {
	arr := seq.NewArray(3, 1, 2)

	for step := range sorting.Bubble(arr) {
		fmt.Printf("%d. %s\n", step.Number, step.Description)
	}
	fmt.Println("result:", arr.ToSlice())
	// Output:
	// 1. Comparing elements at indices 0 and 1
	// 2. Swapping elements at indices 0 and 1
	// 3. Comparing elements at indices 1 and 2
	// 4. Swapping elements at indices 1 and 2
	// 5. Comparing elements at indices 0 and 1
	// 6. Array is now sorted
	// result: [1 2 3]
}

// ExampleExecute sorts through the registry, the way a frontend holding
// only the algorithm's name would.
func ExampleExecute() {
	arr := seq.NewArray(64, 25, 12, 22, 11)

	steps, err := sorting.Execute("selection_sort", arr, false)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("steps:", len(steps) > 0)
	fmt.Println("sorted:", arr.ToSlice())
	// Output:
	// steps: true
	// sorted: [11 12 22 25 64]
}
