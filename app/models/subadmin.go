package models

// SubAdmin represents a delegated administrator account. Access to
// protected actions is gated by IsActive, which only the admin can flip.
type SubAdmin struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Designation  string `json:"designation"`
	JoiningDate  string `json:"joiningDate"`
	MobileNumber string `json:"mobileNumber"`
	IsActive     bool   `json:"isActive"`
}
