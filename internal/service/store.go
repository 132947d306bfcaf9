package service

import (
	"errors"

	"gorm.io/gorm"

	"intake_backend/pkg/database"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidStatus = errors.New("invalid status value")
)

// Resource is satisfied by every intake model: a lifecycle status field
// restricted to a per-kind enum, with a per-kind default.
type Resource[T any] interface {
	*T
	GetStatus() string
	SetStatus(status string)
	DefaultStatus() string
	ValidStatuses() []string
}

// Store implements the create/list/get/update-status/delete pattern
// shared by all four record kinds. One instantiation per model type
// replaces four copies of the same controller-level persistence code.
type Store[T any, PT Resource[T]] struct {
	db func() *gorm.DB
}

func NewStore[T any, PT Resource[T]]() *Store[T, PT] {
	return &Store[T, PT]{db: database.GetDB}
}

// Create persists a new record, filling in the kind's default status
// when the caller left it empty.
func (s *Store[T, PT]) Create(rec PT) error {
	if rec.GetStatus() == "" {
		rec.SetStatus(rec.DefaultStatus())
	}
	return s.db().Create(rec).Error
}

// List returns every record of the kind, newest first. The admin
// console filters and searches client-side over the full list.
func (s *Store[T, PT]) List() ([]T, error) {
	var recs []T
	err := s.db().Order("created_at DESC, id DESC").Find(&recs).Error
	return recs, err
}

func (s *Store[T, PT]) Get(id uint) (PT, error) {
	rec := PT(new(T))
	if err := s.db().First(rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// UpdateStatus rejects values outside the kind's enum before touching
// the database. Transitions are unrestricted otherwise: any enum member
// may follow any other.
func (s *Store[T, PT]) UpdateStatus(id uint, status string) (PT, error) {
	probe := PT(new(T))
	valid := false
	for _, v := range probe.ValidStatuses() {
		if v == status {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrInvalidStatus
	}

	rec, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db().Model(rec).Update("status", status).Error; err != nil {
		return nil, err
	}
	rec.SetStatus(status)
	return rec, nil
}

// Delete removes the record permanently.
func (s *Store[T, PT]) Delete(id uint) error {
	result := s.db().Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
