package slicex_test

import (
	"fmt"

	"github.com/msto63/datakit/utils/slicex"
)

func ExampleSortBy() {
	menu := []map[string]any{
		{"id": "home", "weight": 1},
		{"id": "contact", "weight": 4},
		{"id": "about", "weight": 2},
	}

	for _, item := range slicex.SortBy(menu, "weight", slicex.OrderDesc).MustUnwrap() {
		fmt.Println(item["id"])
	}
	// Output:
	// contact
	// about
	// home
}

func ExampleGroupedByMany() {
	posts := []map[string]any{
		{"title": "first", "meta": map[string]any{"tags": []any{"tag_1", "tag_2"}}},
		{"title": "second", "meta": map[string]any{"tags": []any{"tag_1"}}},
	}

	for _, g := range slicex.GroupedByMany(posts, "meta.tags", "title").MustUnwrap() {
		fmt.Println(g.Key, len(g.Items))
	}
	// Output:
	// tag_1 2
	// tag_2 1
}

func ExampleUniq() {
	fmt.Println(slicex.Uniq([]int{1, 2, 3, 2, 1}))
	// Output: [1 2 3]
}
