package heap_test

import (
	"errors"
	"fmt"

	hp "github.com/hankgalt/heap-lab/pkg/utils/heap"
)

func ExampleNewMaxHeap() {
	h, err := hp.NewMaxHeap[int](10)
	if err != nil {
		panic(err)
	}
	for _, v := range []int{1, 4, 3, 6, 7} {
		_ = h.Insert(v)
	}
	fmt.Println(h, h.Size())

	top, _ := h.Extract()
	fmt.Println(top, h)

	// Output:
	// [7,6,3,1,4] 5
	// 7 [6,4,3,1]
}

func ExampleBinaryHeap_Insert() {
	h, _ := hp.NewMinHeap[int](1)
	_ = h.Insert(3)
	if err := h.Insert(2); errors.Is(err, hp.ErrHeapFull) {
		fmt.Println("full:", h)
	}

	// Output:
	// full: [3]
}
