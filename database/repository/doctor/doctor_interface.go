package doctorRepo

import "doctorsportal/models"

// DoctorRepository defines access to doctor records. Purely administrative
// CRUD; nothing derives from it.
type DoctorRepository interface {
	Insert(doctor *models.Doctor) error
	GetAll() ([]models.Doctor, error)
	Delete(id string) error
}
