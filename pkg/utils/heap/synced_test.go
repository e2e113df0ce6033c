package heap_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	hp "github.com/hankgalt/heap-lab/pkg/utils/heap"
)

func TestSyncHeapConcurrentInsert(t *testing.T) {
	const workers, perWorker = 8, 50

	h, err := hp.NewMinHeap[int](workers * perWorker)
	require.NoError(t, err)
	sh := hp.NewSyncHeap(h)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if err := sh.Insert(w*perWorker + i); err != nil {
					t.Errorf("insert: %v", err)
				}
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, workers*perWorker, sh.Size())
	require.ErrorIs(t, sh.Insert(-1), hp.ErrHeapFull)

	for want := 0; want < workers*perWorker; want++ {
		v, err := sh.Extract()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
	_, err = sh.Peek()
	require.ErrorIs(t, err, hp.ErrHeapEmpty)
}

func TestSyncHeapConcurrentDrain(t *testing.T) {
	values := []int{9, 2, 7, 4, 5, 1, 8, 3, 6, 0}
	h, err := hp.FromSlice(len(values), hp.MaxOrder, values)
	require.NoError(t, err)
	sh := hp.NewSyncHeap(h)
	require.Equal(t, hp.MaxOrder, sh.Order())
	require.Equal(t, len(values), sh.Capacity())

	var (
		mu  sync.Mutex
		got []int
		wg  sync.WaitGroup
	)
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				v, err := sh.Extract()
				if err != nil {
					return
				}
				mu.Lock()
				got = append(got, v)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.ElementsMatch(t, values, got)
	require.Equal(t, "no elements", sh.String())

	require.NoError(t, sh.Insert(3))
	items, err := sh.Describe()
	require.NoError(t, err)
	require.Equal(t, []int{3}, items)
	sh.Reset()
	require.Equal(t, 0, sh.Size())
}
