package models

// LeaveStatus defines the lifecycle states of a leave request.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

// LeaveType defines the categories of leave an employee can request.
type LeaveType string

const (
	SickLeave      LeaveType = "Sick"
	CasualLeave    LeaveType = "Casual"
	PaternityLeave LeaveType = "Paternity"
	AnnualLeave    LeaveType = "Annual"
)

// TaskStatus defines the possible status values for a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

// TicketStatus defines the lifecycle states of a support ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "OPEN"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketResolved   TicketStatus = "RESOLVED"
)

// TicketPriority defines the priority levels of a support ticket.
type TicketPriority string

const (
	PriorityHigh   TicketPriority = "High"
	PriorityMedium TicketPriority = "Medium"
	PriorityLow    TicketPriority = "Low"
)

// MeetingMode defines how a meeting is held.
type MeetingMode string

const (
	MeetingOnline  MeetingMode = "Online"
	MeetingOffline MeetingMode = "Offline"
)

// RecipientType defines who an announcement is addressed to.
type RecipientType string

const (
	EmployeeRecipient RecipientType = "employee"
	SubAdminRecipient RecipientType = "subAdmin"
)

// AttendanceStatus defines the possible status values for an attendance record.
type AttendanceStatus string

const (
	Present AttendanceStatus = "PRESENT"
	Absent  AttendanceStatus = "ABSENT"
	HalfDay AttendanceStatus = "HALF_DAY"
)
