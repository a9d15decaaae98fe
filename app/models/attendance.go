package models

// AttendanceRecord represents one day of attendance for an employee or
// sub-admin, keyed by their email.
type AttendanceRecord struct {
	ID           string           `json:"id"`
	Email        string           `json:"email"`
	Date         string           `json:"date"`
	CheckInTime  string           `json:"checkInTime,omitempty"`
	CheckOutTime string           `json:"checkOutTime,omitempty"`
	Status       AttendanceStatus `json:"status"`
}
