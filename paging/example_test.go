package paging_test

import (
	"fmt"

	"github.com/ncobase/pager/paging"
)

func ExamplePager() {
	items := []string{"a", "b", "c", "d", "e"}
	p, err := paging.New(items, 2)
	if err != nil {
		panic(err)
	}

	for p.HasMore() {
		fmt.Println(p.Next())
	}
	fmt.Println(p.Get(2), p.TotalPages())
	// Output:
	// [a b]
	// [c d]
	// [e]
	// [e] 3
}

func ExamplePager_ResetCursor() {
	p, _ := paging.New([]int{1, 2, 3, 4, 5, 6}, 2)

	p.ResetCursor(1)
	fmt.Println(p.Next())
	fmt.Println(p.Next(), p.HasMore())
	// Output:
	// [5 6]
	// [] false
}

func ExamplePaginate() {
	p, _ := paging.New([]int{1, 2, 3}, 2)

	res, _ := paging.Paginate(p, paging.Params{})
	fmt.Println(res.Items, res.HasNextPage)

	res, _ = paging.Paginate(p, paging.Params{Cursor: res.NextCursor})
	fmt.Println(res.Items, res.HasNextPage)
	// Output:
	// [1 2] true
	// [3] false
}
