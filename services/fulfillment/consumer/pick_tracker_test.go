package consumer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordOrderAccumulates(t *testing.T) {
	tracker := NewPickTracker()

	tracker.RecordOrder("o1", []string{"math-g1-001", "eng-g1-001"}, 953)
	tracker.RecordOrder("o2", []string{"math-g1-001"}, 590)

	assert.EqualValues(t, 2, tracker.TotalOrders())
	assert.EqualValues(t, 2, tracker.Copies("math-g1-001"))
	assert.EqualValues(t, 1, tracker.Copies("eng-g1-001"))
	assert.EqualValues(t, 0, tracker.Copies("kis-g1-001"))
}

func TestRecordOrderConcurrent(t *testing.T) {
	tracker := NewPickTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.RecordOrder("o", []string{"math-g1-001"}, 340)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 50, tracker.TotalOrders())
	assert.EqualValues(t, 50, tracker.Copies("math-g1-001"))
}
