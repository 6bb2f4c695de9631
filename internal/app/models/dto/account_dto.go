package dto

import (
	"time"

	"github.com/yigit/campuslink/internal/app/models"
)

// AccountResponse represents a base account with its role profile
type AccountResponse struct {
	UserID     string              `json:"user_id"`
	RealName   string              `json:"real_name"`
	Email      string              `json:"email"`
	Username   string              `json:"username"`
	Nickname   string              `json:"nickname"`
	Role       models.Role         `json:"role" enums:"student,department,company"`
	CreatedAt  time.Time           `json:"created_at"`
	Student    *StudentProfileData `json:"student_profile,omitempty"`
	Department *DepartmentData     `json:"department_profile,omitempty"`
	Company    *CompanyData        `json:"company_profile,omitempty"`
}

// StudentProfileData is the student half of an account
type StudentProfileData struct {
	StudentID    string  `json:"student_id" example:"S5f0c3c1e"`
	DepartmentID *string `json:"department_id"`
	EntryYear    int     `json:"entry_year" example:"2024"`
	Grade        int     `json:"grade" example:"1"`
	IsPoor       bool    `json:"is_poor"`
}

// DepartmentData is the department half of an account
type DepartmentData struct {
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name" example:"Dept-CS"`
	ContactPerson  string `json:"contact_person"`
}

// CompanyData is the company half of an account
type CompanyData struct {
	CompanyID     string `json:"company_id"`
	CompanyName   string `json:"company_name" example:"Acme"`
	Industry      string `json:"industry" example:"Unknown"`
	ContactPerson string `json:"contact_person"`
}

// NewAccountResponse flattens an account for the API; the password hash is dropped
func NewAccountResponse(account *models.Account) *AccountResponse {
	if account == nil || account.User == nil {
		return nil
	}

	u := account.User
	resp := &AccountResponse{
		UserID:    u.ID,
		RealName:  u.RealName,
		Email:     u.Email,
		Username:  u.Username,
		Nickname:  u.Nickname,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}

	switch p := account.Profile.(type) {
	case *models.StudentProfile:
		resp.Student = &StudentProfileData{
			StudentID:    p.StudentID,
			DepartmentID: p.DepartmentID,
			EntryYear:    p.EntryYear,
			Grade:        p.Grade,
			IsPoor:       p.IsPoor,
		}
	case *models.DepartmentProfile:
		resp.Department = &DepartmentData{
			DepartmentID:   p.DepartmentID,
			DepartmentName: p.DepartmentName,
			ContactPerson:  p.ContactPerson,
		}
	case *models.CompanyProfile:
		resp.Company = &CompanyData{
			CompanyID:     p.CompanyID,
			CompanyName:   p.CompanyName,
			Industry:      p.Industry,
			ContactPerson: p.ContactPerson,
		}
	}

	return resp
}
