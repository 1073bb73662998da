package flow

import (
	"context"
	"sync"

	"guestdesk/internal/models"
)

// Lookup is the backend call AvailabilityQuery issues.
type Lookup func(ctx context.Context, checkIn, checkOut string) (models.Availability, error)

// AvailabilityQuery keeps the latest availability snapshot for the booking
// page. Each Fetch gets a generation number; an answer only lands if no newer
// fetch has started since, so a slow early response can never overwrite a
// fresher one.
type AvailabilityQuery struct {
	lookup Lookup

	mu         sync.Mutex
	generation uint64
	snapshot   models.Availability
	hasResult  bool
	checkIn    string
	checkOut   string
}

func NewAvailabilityQuery(lookup Lookup) *AvailabilityQuery {
	return &AvailabilityQuery{lookup: lookup}
}

// Fetch asks the backend for availability on the given dates and records the
// answer unless it has been superseded. It reports whether its result landed.
func (q *AvailabilityQuery) Fetch(ctx context.Context, checkIn, checkOut string) (bool, error) {
	q.mu.Lock()
	q.generation++
	gen := q.generation
	q.mu.Unlock()

	avail, err := q.lookup(ctx, checkIn, checkOut)

	q.mu.Lock()
	defer q.mu.Unlock()

	if gen != q.generation {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	q.snapshot = avail
	q.hasResult = true
	q.checkIn = checkIn
	q.checkOut = checkOut

	return true, nil
}

// Snapshot returns the latest landed result, if any, with the dates it was
// fetched for.
func (q *AvailabilityQuery) Snapshot() (models.Availability, string, string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshot, q.checkIn, q.checkOut, q.hasResult
}

// Clear drops the snapshot and invalidates any fetch still in flight.
func (q *AvailabilityQuery) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.generation++
	q.snapshot = models.Availability{}
	q.hasResult = false
	q.checkIn = ""
	q.checkOut = ""
}
