package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ActiveEnrollment is a voter's current enrollment resolved to its group
// and that group's grade.
type ActiveEnrollment struct {
	PersonID string
	GroupID  string
	GradeID  string
}

// GradeHeadcount is the number of actively enrolled students in one grade.
type GradeHeadcount struct {
	GradeID   string
	GradeName string
	Enrolled  int64
}

// EnrollmentStorage is the read side of the academic administration data
// the election subsystem depends on: grades, groups and enrollments.
type EnrollmentStorage interface {
	ActiveEnrollment(ctx context.Context, personID string, institutionID string, year int) (*ActiveEnrollment, error)
	CountActive(ctx context.Context, institutionID string, year int) (int64, error)
	HeadcountByGrade(ctx context.Context, institutionID string, year int) ([]*GradeHeadcount, error)
	GradesByInstitution(ctx context.Context, institutionID string) ([]*Grade, error)
	GroupsByInstitution(ctx context.Context, institutionID string) ([]*Group, error)
}

type GormEnrollmentStorage struct {
	DB *gorm.DB
}

func (s *GormEnrollmentStorage) ActiveEnrollment(ctx context.Context, personID string, institutionID string, year int) (*ActiveEnrollment, error) {
	var enrollment ActiveEnrollment
	err := s.DB.WithContext(ctx).Model(&Enrollment{}).
		Select("enrollments.person_id AS person_id, enrollments.group_id AS group_id, groups.grade_id AS grade_id").
		Joins("JOIN groups ON groups.id = enrollments.group_id").
		Where("enrollments.person_id = ? AND enrollments.status = ? AND enrollments.academic_year = ?", personID, EnrollmentStatusActive, year).
		Where("groups.institution_id = ?", institutionID).
		First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *GormEnrollmentStorage) CountActive(ctx context.Context, institutionID string, year int) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&Enrollment{}).
		Joins("JOIN groups ON groups.id = enrollments.group_id").
		Where("enrollments.status = ? AND enrollments.academic_year = ?", EnrollmentStatusActive, year).
		Where("groups.institution_id = ?", institutionID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormEnrollmentStorage) HeadcountByGrade(ctx context.Context, institutionID string, year int) ([]*GradeHeadcount, error) {
	var rows []*GradeHeadcount
	err := s.DB.WithContext(ctx).Model(&Enrollment{}).
		Select("grades.id AS grade_id, grades.name AS grade_name, COUNT(enrollments.id) AS enrolled").
		Joins("JOIN groups ON groups.id = enrollments.group_id").
		Joins("JOIN grades ON grades.id = groups.grade_id").
		Where("enrollments.status = ? AND enrollments.academic_year = ?", EnrollmentStatusActive, year).
		Where("groups.institution_id = ?", institutionID).
		Group("grades.id").
		Order("grades.ordinal ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormEnrollmentStorage) GradesByInstitution(ctx context.Context, institutionID string) ([]*Grade, error) {
	var grades []*Grade
	err := s.DB.WithContext(ctx).
		Where("institution_id = ? AND active = ?", institutionID, true).
		Order("ordinal ASC").
		Find(&grades).Error
	if err != nil {
		return nil, err
	}
	return grades, nil
}

func (s *GormEnrollmentStorage) GroupsByInstitution(ctx context.Context, institutionID string) ([]*Group, error) {
	var groups []*Group
	err := s.DB.WithContext(ctx).
		Where("institution_id = ?", institutionID).
		Order("name ASC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}
