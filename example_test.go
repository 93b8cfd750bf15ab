package natsort_test

import (
	"fmt"

	"github.com/dmitrymomot/natsort"
)

func ExampleSort() {
	items := []string{"item10", "item2", "item1"}
	natsort.Sort(items)
	fmt.Println(items)
	// Output: [item1 item2 item10]
}

func ExampleNew() {
	c, err := natsort.New(natsort.CaseInsensitive(true))
	if err != nil {
		panic(err)
	}

	items := []string{"File10.txt", "file2.txt", "FILE1.txt"}
	fmt.Println(c.Sorted(items))
	// Output: [FILE1.txt file2.txt File10.txt]
}

func ExampleCompare() {
	fmt.Println(natsort.Compare("file2", "file10"))
	fmt.Println(natsort.Compare("file10", "file2"))
	fmt.Println(natsort.Compare("file10", "file10"))
	// Output:
	// -1
	// 1
	// 0
}
