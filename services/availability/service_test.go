package availability

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"doctorsportal/models"

	"github.com/go-redis/redis/v8"
)

type fakeCatalog struct {
	options []models.AppointmentOption
	err     error
	calls   int
}

func (f *fakeCatalog) GetAll() ([]models.AppointmentOption, error) {
	f.calls++
	return f.options, f.err
}

func (f *fakeCatalog) GetSpecialties() ([]models.Specialty, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Specialty
	for _, o := range f.options {
		out = append(out, models.Specialty{Name: o.Name})
	}
	return out, nil
}

func (f *fakeCatalog) Upsert(option models.AppointmentOption) error { return nil }

type fakeLedger struct {
	bookings []models.Booking
	err      error
}

func (f *fakeLedger) Insert(b *models.Booking) error { return nil }

func (f *fakeLedger) GetByID(id string) (*models.Booking, error) { return nil, nil }

func (f *fakeLedger) GetByEmail(email string) ([]models.Booking, error) { return nil, nil }

func (f *fakeLedger) GetByDate(date string) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if b.AppointmentDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeLedger) MarkPaid(id, txID, status string) error { return nil }

// fakeCache is an in-memory ViewCache built from the go-redis result
// constructors.
type fakeCache struct {
	store map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if v, ok := f.store[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	if b, ok := value.([]byte); ok {
		f.store[key] = string(b)
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.store[k]; ok {
			delete(f.store, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestOptionsFiltersBookedSlots(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Catalog: &fakeCatalog{options: []models.AppointmentOption{
			{Name: "Checkup", Slots: []string{"9am", "10am"}, Price: 50},
		}},
		Bookings: &fakeLedger{bookings: []models.Booking{
			{AppointmentDate: "2024-05-14", Treatment: "Checkup", Slot: "9am"},
		}},
	}

	got, err := svc.Options(context.Background(), "2024-05-14")
	if err != nil {
		t.Fatalf("Options returned error: %v", err)
	}
	if !reflect.DeepEqual(got[0].Slots, []string{"10am"}) {
		t.Errorf("slots = %v, want [10am]", got[0].Slots)
	}
}

func TestOptionsMissingDateReturnsFullCatalog(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Catalog: &fakeCatalog{options: []models.AppointmentOption{
			{Name: "Checkup", Slots: []string{"9am", "10am"}, Price: 50},
		}},
		Bookings: &fakeLedger{bookings: []models.Booking{
			{AppointmentDate: "2024-05-14", Treatment: "Checkup", Slot: "9am"},
		}},
	}

	// An empty date matches no bookings, so nothing is filtered.
	got, err := svc.Options(context.Background(), "")
	if err != nil {
		t.Fatalf("Options returned error: %v", err)
	}
	if !reflect.DeepEqual(got[0].Slots, []string{"9am", "10am"}) {
		t.Errorf("slots = %v, want full catalog list", got[0].Slots)
	}
}

func TestOptionsNeverReturnsPartialResults(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Catalog: &fakeCatalog{options: []models.AppointmentOption{
			{Name: "Checkup", Slots: []string{"9am"}},
		}},
		Bookings: &fakeLedger{err: errors.New("store unreachable")},
	}

	got, err := svc.Options(context.Background(), "2024-05-14")
	if err == nil {
		t.Fatal("expected error when the booking fetch fails")
	}
	if got != nil {
		t.Errorf("expected no partial results, got %v", got)
	}
}

func TestOptionsServedFromCache(t *testing.T) {
	catalog := &fakeCatalog{options: []models.AppointmentOption{
		{Name: "Checkup", Slots: []string{"9am", "10am"}, Price: 50},
	}}
	svc := &DefaultAvailabilityService{
		Catalog:  catalog,
		Bookings: &fakeLedger{},
		Cache:    newFakeCache(),
	}
	ctx := context.Background()

	first, err := svc.Options(ctx, "2024-05-14")
	if err != nil {
		t.Fatalf("Options returned error: %v", err)
	}
	second, err := svc.Options(ctx, "2024-05-14")
	if err != nil {
		t.Fatalf("Options returned error: %v", err)
	}
	if catalog.calls != 1 {
		t.Errorf("catalog fetched %d times, want 1 (second read from cache)", catalog.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached view %v differs from computed view %v", second, first)
	}
}

func TestOptionsCacheMissRecomputes(t *testing.T) {
	catalog := &fakeCatalog{options: []models.AppointmentOption{
		{Name: "Checkup", Slots: []string{"9am"}},
	}}
	cache := newFakeCache()
	svc := &DefaultAvailabilityService{
		Catalog:  catalog,
		Bookings: &fakeLedger{},
		Cache:    cache,
	}
	ctx := context.Background()

	if _, err := svc.Options(ctx, "2024-05-14"); err != nil {
		t.Fatalf("Options returned error: %v", err)
	}
	// Dropping the key, as booking creation does, forces a recompute.
	cache.Del(ctx, CacheKey("2024-05-14"))
	if _, err := svc.Options(ctx, "2024-05-14"); err != nil {
		t.Fatalf("Options returned error: %v", err)
	}
	if catalog.calls != 2 {
		t.Errorf("catalog fetched %d times, want 2 after invalidation", catalog.calls)
	}
}

func TestSpecialties(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Catalog: &fakeCatalog{options: []models.AppointmentOption{
			{Name: "Checkup"}, {Name: "Oral Surgery"},
		}},
		Bookings: &fakeLedger{},
	}

	got, err := svc.Specialties()
	if err != nil {
		t.Fatalf("Specialties returned error: %v", err)
	}
	want := []models.Specialty{{Name: "Checkup"}, {Name: "Oral Surgery"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("specialties = %v, want %v", got, want)
	}
}
