package utils_test

import (
	"fixture-generator/utils"
	"fmt"
)

func ExampleClamp() {
	fmt.Println(utils.Clamp(1, 0, 10), utils.Clamp(1, 5, 10), utils.Clamp(1, 42, 10), utils.Clamp(10, 5, 1))
	fmt.Println(utils.IsInRange(0, 3, 3), utils.IsInRange(0, 4, 3))

	// Output:
	// 1 5 10 1
	// true false
}

func ExampleLastCut() {
	fmt.Println(utils.LastCut("fixture-generator/store.NewInvoice", "/"))
	fmt.Println(utils.LastCut("main", "/"))

	// Output:
	// fixture-generator store.NewInvoice
	//  main
}
