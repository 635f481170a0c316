package typex_test

import (
	"fmt"

	"github.com/msto63/datakit/utils/typex"
)

func ExampleKindOf() {
	fmt.Println(typex.KindOf(nil))
	fmt.Println(typex.KindOf([]string{"a"}))
	fmt.Println(typex.KindOf(map[string]any{"a": 1}))
	// Output:
	// null
	// array
	// object
}

func ExampleIsEmpty() {
	fmt.Println(typex.IsEmpty(""), typex.IsEmpty(0), typex.IsEmpty([]int{}))
	// Output: true false true
}
