package catalogRepo

import "doctorsportal/models"

// CatalogRepository defines access to the treatment catalog.
// The catalog is read-mostly; Upsert exists for administrative seeding only.
type CatalogRepository interface {
	GetAll() ([]models.AppointmentOption, error)
	GetSpecialties() ([]models.Specialty, error)
	Upsert(option models.AppointmentOption) error
}
