package heaps

import (
	"context"
	"fmt"
	"io"

	hp "github.com/hankgalt/heap-lab/pkg/utils/heap"
)

var demoValues = []int{1, 4, 3, 6, 7}

// RunDemo walks a heap through the classic insert, peek, extract, insert, drain sequence,
// printing the array layout after each step. The heap is expected to start empty.
func RunDemo(ctx context.Context, w io.Writer, h *InstrumentedHeap[int]) error {
	extreme := "maximum"
	if h.Order() == hp.MinOrder {
		extreme = "minimum"
	}

	p := &printer{w: w}
	p.printf("=== %s-heap demonstration (capacity %d) ===\n", h.Order(), h.Capacity())

	p.printf("Adding elements: %v\n", demoValues)
	for _, v := range demoValues {
		if err := h.Insert(ctx, v); err != nil {
			p.printf("  could not add %d: %v\n", v, err)
		}
	}
	p.printf("Heap after adding elements: %s (size %d)\n", h, h.Size())

	top, err := h.Peek(ctx)
	if err != nil {
		return err
	}
	p.printf("Peek (%s): %d\n", extreme, top)

	top, err = h.Extract(ctx)
	if err != nil {
		return err
	}
	p.printf("Extracted %s: %d\n", extreme, top)
	p.printf("Heap after removing: %s (size %d)\n", h, h.Size())

	if err := h.Insert(ctx, 1); err != nil {
		p.printf("  could not add 1: %v\n", err)
	}
	p.printf("Heap after adding 1: %s\n", h)

	drained := make([]int, 0, h.Size())
	for h.Size() > 0 {
		v, err := h.Extract(ctx)
		if err != nil {
			return err
		}
		drained = append(drained, v)
	}
	p.printf("Drained: %v\n", drained)
	p.printf("Heap after draining: %s\n", h)

	if _, err := h.Peek(ctx); err != nil {
		p.printf("Peek on empty heap: %v\n", err)
	}
	return p.err
}

// printer keeps the first write error so the demo reads as a straight script.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
