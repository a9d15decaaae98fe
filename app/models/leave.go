package models

// LeaveRequest represents a pending or resolved leave application.
// EndDate is empty for open-ended leave.
type LeaveRequest struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      string      `json:"role"`
	LeaveType LeaveType   `json:"leaveType"`
	Reason    string      `json:"reason"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate,omitempty"`
	Status    LeaveStatus `json:"status"`
}
