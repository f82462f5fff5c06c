package bigsort_test

import (
	"fmt"

	"github.com/filthyfil/bigsort/pkg/bigsort"
)

func ExampleSort() {
	res, err := bigsort.Sort([]int{5, 3, 9, 1})
	if err != nil {
		panic(err)
	}

	fmt.Println(res.Values)
	fmt.Println(res.Metrics.PresenceVectorSize)
	// Output:
	// [1 3 5 9]
	// 9
}

func ExampleEngine_Sort() {
	engine := bigsort.New(bigsort.Options{Strict: true})

	_, err := engine.Sort([]int{4, 4, 7})
	fmt.Println(err)
	// Output:
	// duplicate value 4: input values must be distinct
}

func ExampleResult_Collapsed() {
	res, err := bigsort.Sort([]int{4, 4, 7})
	if err != nil {
		panic(err)
	}

	fmt.Println(res.Values)
	fmt.Println(res.Collapsed())
	// Output:
	// [4 7]
	// true
}
