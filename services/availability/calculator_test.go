package availability

import (
	"reflect"
	"testing"

	"doctorsportal/models"
)

func TestRemaining(t *testing.T) {
	catalog := []models.AppointmentOption{
		{Name: "Checkup", Slots: []string{"9am", "10am"}, Price: 50},
		{Name: "Teeth Cleaning", Slots: []string{"9am", "10am", "11am"}, Price: 80},
	}

	tests := []struct {
		name   string
		booked []models.Booking
		want   map[string][]string
	}{
		{
			name:   "no bookings returns full slot lists",
			booked: nil,
			want: map[string][]string{
				"Checkup":        {"9am", "10am"},
				"Teeth Cleaning": {"9am", "10am", "11am"},
			},
		},
		{
			name: "booked slot removed for matching treatment only",
			booked: []models.Booking{
				{Treatment: "Checkup", Slot: "9am"},
			},
			want: map[string][]string{
				"Checkup":        {"10am"},
				"Teeth Cleaning": {"9am", "10am", "11am"},
			},
		},
		{
			name: "duplicate bookings for one slot collapse",
			booked: []models.Booking{
				{Treatment: "Checkup", Slot: "9am"},
				{Treatment: "Checkup", Slot: "9am"},
			},
			want: map[string][]string{
				"Checkup":        {"10am"},
				"Teeth Cleaning": {"9am", "10am", "11am"},
			},
		},
		{
			name: "fully booked option still returned with empty slots",
			booked: []models.Booking{
				{Treatment: "Checkup", Slot: "9am"},
				{Treatment: "Checkup", Slot: "10am"},
			},
			want: map[string][]string{
				"Checkup":        {},
				"Teeth Cleaning": {"9am", "10am", "11am"},
			},
		},
		{
			name: "unknown treatment booking is ignored",
			booked: []models.Booking{
				{Treatment: "Oral Surgery", Slot: "9am"},
			},
			want: map[string][]string{
				"Checkup":        {"9am", "10am"},
				"Teeth Cleaning": {"9am", "10am", "11am"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Remaining(catalog, tt.booked)
			if len(got) != len(catalog) {
				t.Fatalf("expected %d options, got %d", len(catalog), len(got))
			}
			for _, opt := range got {
				want, ok := tt.want[opt.Name]
				if !ok {
					t.Fatalf("unexpected option %q in result", opt.Name)
				}
				if !reflect.DeepEqual(opt.Slots, want) {
					t.Errorf("option %q: slots = %v, want %v", opt.Name, opt.Slots, want)
				}
			}
		})
	}
}

func TestRemainingPreservesSlotOrder(t *testing.T) {
	catalog := []models.AppointmentOption{
		{Name: "Checkup", Slots: []string{"8am", "9am", "10am", "11am", "12pm"}},
	}
	booked := []models.Booking{
		{Treatment: "Checkup", Slot: "9am"},
		{Treatment: "Checkup", Slot: "11am"},
	}

	got := Remaining(catalog, booked)
	want := []string{"8am", "10am", "12pm"}
	if !reflect.DeepEqual(got[0].Slots, want) {
		t.Errorf("slots = %v, want %v (catalog order preserved)", got[0].Slots, want)
	}
}

func TestRemainingDoesNotMutateCatalog(t *testing.T) {
	catalog := []models.AppointmentOption{
		{Name: "Checkup", Slots: []string{"9am", "10am"}},
	}
	booked := []models.Booking{
		{Treatment: "Checkup", Slot: "9am"},
	}

	_ = Remaining(catalog, booked)

	if !reflect.DeepEqual(catalog[0].Slots, []string{"9am", "10am"}) {
		t.Errorf("stored catalog slots mutated: %v", catalog[0].Slots)
	}
}

func TestRemainingIsIdempotent(t *testing.T) {
	catalog := []models.AppointmentOption{
		{Name: "Checkup", Slots: []string{"9am", "10am"}},
		{Name: "Teeth Cleaning", Slots: []string{"9am"}},
	}
	booked := []models.Booking{
		{Treatment: "Checkup", Slot: "10am"},
	}

	first := Remaining(catalog, booked)
	second := Remaining(catalog, booked)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated computation differs: %v vs %v", first, second)
	}
}
