package availability

import "doctorsportal/models"

// Remaining computes the bookable view of the catalog for one date: each
// option's slot list minus every slot already consumed by a booking with a
// matching treatment name. Set semantics, so duplicate bookings for the same
// slot collapse; slot order follows the stored catalog. The input options are
// not mutated and an option with no free slots is still returned with an
// empty list.
func Remaining(options []models.AppointmentOption, booked []models.Booking) []models.AppointmentOption {
	consumed := make(map[string]map[string]struct{}, len(booked))
	for _, b := range booked {
		slots, ok := consumed[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			consumed[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	out := make([]models.AppointmentOption, len(options))
	for i, opt := range options {
		remaining := make([]string, 0, len(opt.Slots))
		taken := consumed[opt.Name]
		for _, slot := range opt.Slots {
			if _, ok := taken[slot]; ok {
				continue
			}
			remaining = append(remaining, slot)
		}
		opt.Slots = remaining
		out[i] = opt
	}
	return out
}
