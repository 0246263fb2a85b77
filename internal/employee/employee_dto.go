package employee

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	FirstName    string  `json:"first_name" binding:"required"`
	LastName     string  `json:"last_name" binding:"required"`
	Password     string  `json:"password" binding:"required,min=8"`
	PhoneNumber  *string `json:"phone_number"`
	Department   *string `json:"department"`
	Position     *string `json:"position"`
	Role         string  `json:"role" binding:"required,oneof=EMPLOYEE SUPERVISOR ADMIN"`
}

// UpdateEmployeeRequest carries a partial update; nil fields are left
// untouched.
type UpdateEmployeeRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Department  *string `json:"department"`
	Position    *string `json:"position"`
	Role        *string `json:"role" binding:"omitempty,oneof=EMPLOYEE SUPERVISOR ADMIN"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	FullName     string  `json:"full_name"`
	PhoneNumber  *string `json:"phone_number"`
	Department   *string `json:"department"`
	Position     *string `json:"position"`
	Role         string  `json:"role"`
	IsActive     bool    `json:"is_active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID.String(),
		EmployeeCode: e.EmployeeCode,
		Email:        e.Email,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		FullName:     e.FullName(),
		PhoneNumber:  e.PhoneNumber,
		Department:   e.Department,
		Position:     e.Position,
		Role:         e.Role,
		IsActive:     e.IsActive,
	}
}
