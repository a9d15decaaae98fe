package models

type AddressDetails struct {
	CurrentAddress   string `json:"currentAddress"`
	PermanentAddress string `json:"permanentAddress"`
}

type EmergencyContact struct {
	Relation             string `json:"relation"`
	EmergencyContactName string `json:"emergencyContactName"`
	EmergencyContactNo   string `json:"emergencyContactNo"`
}

// LeaveBalance holds the remaining leave counts per category.
type LeaveBalance struct {
	SickLeave     int `json:"sickLeave"`
	CasualLeave   int `json:"casualLeave"`
	Paternity     int `json:"paternity"`
	OptionalLeave int `json:"optionalLeave"`
}

type BankDetails struct {
	AccountHolderName string `json:"accountHolderName"`
	AccountType       string `json:"accountType"`
	AccountNumber     string `json:"accountNumber"`
	IFSCCode          string `json:"ifscCode"`
}

// Employee represents a workforce member as returned by the backend.
type Employee struct {
	ID                      string             `json:"id"`
	Name                    string             `json:"name"`
	Email                   string             `json:"email"`
	Role                    string             `json:"role"`
	JoiningDate             string             `json:"joiningDate"`
	MobileNo                string             `json:"mobileNo"`
	DOB                     string             `json:"dob"`
	AddressDetails          *AddressDetails    `json:"addressDetails,omitempty"`
	EmergencyContactDetails []EmergencyContact `json:"emergencyContactDetails,omitempty"`
	AllLeaves               *LeaveBalance      `json:"allLeaves,omitempty"`
	BankDetails             *BankDetails       `json:"bankDetails,omitempty"`
	ApprovedByAdmin         bool               `json:"approvedByAdmin"`
}
