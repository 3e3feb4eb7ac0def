package doctor

import (
	"errors"
	"fmt"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
)

// DoctorService owns administrative doctor records.
type DoctorService interface {
	Add(doctor models.Doctor) error
	List() ([]models.Doctor, error)
	Remove(id string) error
}

// DefaultDoctorService implements DoctorService.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

// Add stores a doctor record.
func (s *DefaultDoctorService) Add(doctor models.Doctor) error {
	if doctor.Name == "" {
		return errors.New("missing doctor name")
	}
	if err := s.Repo.Insert(&doctor); err != nil {
		return fmt.Errorf("failed to add doctor: %w", err)
	}
	return nil
}

// List returns every doctor.
func (s *DefaultDoctorService) List() ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

// Remove deletes a doctor by id.
func (s *DefaultDoctorService) Remove(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to remove doctor: %w", err)
	}
	return nil
}
