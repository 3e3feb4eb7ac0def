package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bookingRepo "doctorsportal/database/repository/booking"
	catalogRepo "doctorsportal/database/repository/catalog"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// cacheTTL bounds staleness of the cached availability view between the
// write-side invalidation on booking creation and natural expiry.
const cacheTTL = 30 * time.Second

// CacheKey returns the cache key for the availability view of one date.
// The booking service deletes this key when a booking lands on the date.
func CacheKey(date string) string {
	return "availability:" + date
}

// ViewCache is the slice of the redis client the availability view uses.
// *redis.Client satisfies it.
type ViewCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// AvailabilityService exposes the derived remaining-slots view of the catalog.
type AvailabilityService interface {
	Options(ctx context.Context, date string) ([]models.AppointmentOption, error)
	Specialties() ([]models.Specialty, error)
}

// DefaultAvailabilityService implements AvailabilityService over the catalog
// and booking repositories, with an optional cache of the computed view.
type DefaultAvailabilityService struct {
	Catalog  catalogRepo.CatalogRepository
	Bookings bookingRepo.BookingRepository
	Cache    ViewCache
}

// Options returns every treatment option with already-booked slots for the
// given date removed. An empty date matches no bookings, so the full catalog
// slot lists come back. Results are a derived view; the stored catalog is
// never mutated.
func (s *DefaultAvailabilityService) Options(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	logger := utils.GetLogger()

	if cached := s.fromCache(ctx, date); cached != nil {
		return cached, nil
	}

	options, err := s.Catalog.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment options: %w", err)
	}

	booked, err := s.Bookings.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", date, err)
	}

	view := Remaining(options, booked)

	if s.Cache != nil {
		data, err := json.Marshal(view)
		if err == nil {
			if err := s.Cache.Set(ctx, CacheKey(date), data, cacheTTL).Err(); err != nil {
				logger.Warn("failed to cache availability view", zap.String("date", date), zap.Error(err))
			}
		}
	}

	return view, nil
}

func (s *DefaultAvailabilityService) fromCache(ctx context.Context, date string) []models.AppointmentOption {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, CacheKey(date)).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("availability cache read failed", zap.Error(err))
		}
		return nil
	}
	var view []models.AppointmentOption
	if err := json.Unmarshal([]byte(data), &view); err != nil {
		return nil
	}
	return view
}

// Specialties returns the names-only projection of the catalog.
func (s *DefaultAvailabilityService) Specialties() ([]models.Specialty, error) {
	specialties, err := s.Catalog.GetSpecialties()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch specialties: %w", err)
	}
	return specialties, nil
}
