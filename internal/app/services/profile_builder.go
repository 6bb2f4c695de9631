package services

import (
	"github.com/yigit/campuslink/internal/app/models"
	"github.com/yigit/campuslink/internal/app/models/dto"
)

const (
	studentIDPrefix      = "S"
	studentIDLength      = 8
	departmentNamePrefix = "Dept-"
	defaultIndustry      = "Unknown"
)

// StudentDefaults are the provisional values a new student profile starts with.
// The department stays unresolved.
type StudentDefaults struct {
	EntryYear int
	Grade     int
}

// DefaultStudentDefaults returns entry year 2024, grade 1
func DefaultStudentDefaults() StudentDefaults {
	return StudentDefaults{EntryYear: 2024, Grade: 1}
}

// profileBuilder constructs the role profile for a freshly inserted user
type profileBuilder interface {
	buildProfile(userID string, req *dto.RegisterRequest) models.Profile
}

type studentProfileBuilder struct {
	defaults StudentDefaults
}

func (b studentProfileBuilder) buildProfile(userID string, _ *dto.RegisterRequest) models.Profile {
	return &models.StudentProfile{
		UserID:       userID,
		StudentID:    studentIDFor(userID),
		DepartmentID: nil,
		EntryYear:    b.defaults.EntryYear,
		Grade:        b.defaults.Grade,
		IsPoor:       false,
	}
}

type departmentProfileBuilder struct{}

func (departmentProfileBuilder) buildProfile(userID string, req *dto.RegisterRequest) models.Profile {
	return &models.DepartmentProfile{
		DepartmentID:   userID,
		DepartmentName: departmentNamePrefix + req.Nickname,
		ContactPerson:  userID,
	}
}

type companyProfileBuilder struct{}

func (companyProfileBuilder) buildProfile(userID string, req *dto.RegisterRequest) models.Profile {
	return &models.CompanyProfile{
		CompanyID:     userID,
		CompanyName:   req.Nickname,
		Industry:      defaultIndustry,
		ContactPerson: userID,
	}
}

// profileBuilderFor selects the builder for role; false for roles outside models.Roles
func profileBuilderFor(role models.Role, defaults StudentDefaults) (profileBuilder, bool) {
	switch role {
	case models.RoleStudent:
		return studentProfileBuilder{defaults: defaults}, true
	case models.RoleDepartment:
		return departmentProfileBuilder{}, true
	case models.RoleCompany:
		return companyProfileBuilder{}, true
	}
	return nil, false
}

func studentIDFor(userID string) string {
	if len(userID) > studentIDLength {
		userID = userID[:studentIDLength]
	}
	return studentIDPrefix + userID
}
