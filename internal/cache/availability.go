package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"guestdesk/internal/config"
	"guestdesk/internal/lib/logger/sl"
	"guestdesk/internal/models"
)

const availabilityPrefix = "availability:"

// OverlapCounter is the storage side of an availability lookup.
type OverlapCounter interface {
	ConfirmedOverlapCounts(checkIn, checkOut string) (map[models.RoomType]int, error)
}

// AvailabilityProvider serves per-room-type open counts, caching snapshots in
// Redis for a short TTL. Snapshots are dropped whenever a booking becomes
// confirmed or is removed.
type AvailabilityProvider struct {
	log     *slog.Logger
	cache   *Cache
	storage OverlapCounter
	hotel   *config.Hotel
	ttl     time.Duration
}

func NewAvailabilityProvider(log *slog.Logger, cache *Cache, storage OverlapCounter, hotel *config.Hotel) *AvailabilityProvider {
	return &AvailabilityProvider{
		log:     log,
		cache:   cache,
		storage: storage,
		hotel:   hotel,
		ttl:     hotel.AvailabilityTTL,
	}
}

func (p *AvailabilityProvider) Availability(ctx context.Context, checkIn, checkOut string) (models.Availability, error) {
	key := fmt.Sprintf("%s%s:%s", availabilityPrefix, checkIn, checkOut)

	var cached models.Availability
	if p.cache != nil {
		ok, err := p.cache.Get(ctx, key, &cached)
		if err != nil {
			p.log.Warn("availability cache read failed", sl.Err(err))
		} else if ok {
			return cached, nil
		}
	}

	counts, err := p.storage.ConfirmedOverlapCounts(checkIn, checkOut)
	if err != nil {
		return models.Availability{}, err
	}

	avail := models.Availability{
		Deluxe:   open(p.hotel.RoomLimit(models.RoomDeluxe), counts[models.RoomDeluxe]),
		Suite:    open(p.hotel.RoomLimit(models.RoomSuite), counts[models.RoomSuite]),
		Standard: open(p.hotel.RoomLimit(models.RoomStandard), counts[models.RoomStandard]),
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, key, avail, p.ttl); err != nil {
			p.log.Warn("availability cache write failed", sl.Err(err))
		}
	}

	return avail, nil
}

// InvalidateAvailability drops every cached snapshot.
func (p *AvailabilityProvider) InvalidateAvailability(ctx context.Context) error {
	if p.cache == nil {
		return nil
	}
	return p.cache.DeletePrefix(ctx, availabilityPrefix)
}

func open(limit, booked int) int {
	if booked >= limit {
		return 0
	}
	return limit - booked
}
