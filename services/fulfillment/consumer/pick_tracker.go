package consumer

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// PickTracker accumulates the copies of each title that warehouse staff
// must pick for delivery. Safe for concurrent workers.
type PickTracker struct {
	mu          sync.Mutex
	totalOrders int64
	bookCopies  map[string]int64
	revenue     int64
}

func NewPickTracker() *PickTracker {
	return &PickTracker{bookCopies: make(map[string]int64)}
}

// RecordOrder adds one order's titles to the pick list.
func (t *PickTracker) RecordOrder(orderID string, bookIDs []string, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalOrders++
	t.revenue += int64(total)
	for _, id := range bookIDs {
		t.bookCopies[id]++
	}

	log.Info().Str("order", orderID).Int64("total_orders", t.totalOrders).Msg("order recorded")
}

// TotalOrders returns the number of orders recorded so far.
func (t *PickTracker) TotalOrders() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalOrders
}

// Copies returns how many copies of a title are on the pick list.
func (t *PickTracker) Copies(bookID string) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bookCopies[bookID]
}

// PrintSummary prints the pick list when the consumer shuts down.
func (t *PickTracker) PrintSummary() {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]string, 0, len(t.bookCopies))
	for id := range t.bookCopies {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("FULFILLMENT SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Orders processed: %d\n", t.totalOrders)
	fmt.Printf("Revenue: KES %d\n", t.revenue)
	for _, id := range ids {
		fmt.Printf("  %s: %d copies\n", id, t.bookCopies[id])
	}
	fmt.Println(strings.Repeat("=", 60))
}
