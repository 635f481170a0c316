package stringx_test

import (
	"fmt"

	"github.com/msto63/datakit/utils/stringx"
)

func ExampleToSlug() {
	fmt.Println(stringx.ToSlug("Bread And Butter").UnwrapOr(""))
	fmt.Println(stringx.ToSlug(42).Err())
	// Output:
	// bread-and-butter
	// [strings.toSlug] Expected string value as input
}

func ExampleTextBetween() {
	fmt.Println(stringx.TextBetween("[music=zap]", "[", "]").UnwrapOr(""))
	// Output: music=zap
}

func ExampleCamelToSnake() {
	fmt.Println(stringx.CamelToSnake("helloWorld").UnwrapOr(""))
	fmt.Println(stringx.ToCamelCase("foo-bar-baz").UnwrapOr(""))
	// Output:
	// hello_world
	// fooBarBaz
}
