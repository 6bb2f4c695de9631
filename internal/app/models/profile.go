package models

// Profile is the role-specific record owned by exactly one User.
// Implementations are limited to this package.
type Profile interface {
	Role() Role
	OwnerID() string
	isProfile()
}

// StudentProfile defines the 'student_profile' table
type StudentProfile struct {
	UserID    string `json:"userId" db:"user_id"`
	StudentID string `json:"studentId" db:"student_id" example:"S5f0c3c1e"`
	// DepartmentID stays nil until a department is assigned
	DepartmentID *string `json:"departmentId" db:"department_id"`
	EntryYear    int     `json:"entryYear" db:"entry_year" example:"2024"`
	Grade        int     `json:"grade" db:"grade" example:"1"`
	IsPoor       bool    `json:"isPoor" db:"is_poor"`
}

func (p *StudentProfile) Role() Role      { return RoleStudent }
func (p *StudentProfile) OwnerID() string { return p.UserID }
func (p *StudentProfile) isProfile()      {}

// DepartmentProfile defines the 'department_profile' table; the department is the user itself
type DepartmentProfile struct {
	DepartmentID   string `json:"departmentId" db:"department_id"`
	DepartmentName string `json:"departmentName" db:"department_name" example:"Dept-CS"`
	ContactPerson  string `json:"contactPerson" db:"contact_person"`
}

func (p *DepartmentProfile) Role() Role      { return RoleDepartment }
func (p *DepartmentProfile) OwnerID() string { return p.DepartmentID }
func (p *DepartmentProfile) isProfile()      {}

// CompanyProfile defines the 'company_profile' table
type CompanyProfile struct {
	CompanyID     string `json:"companyId" db:"company_id"`
	CompanyName   string `json:"companyName" db:"company_name" example:"Acme"`
	Industry      string `json:"industry" db:"industry" example:"Unknown"`
	ContactPerson string `json:"contactPerson" db:"contact_person"`
}

func (p *CompanyProfile) Role() Role      { return RoleCompany }
func (p *CompanyProfile) OwnerID() string { return p.CompanyID }
func (p *CompanyProfile) isProfile()      {}

// Account is a user together with its profile
type Account struct {
	User    *User
	Profile Profile
}
