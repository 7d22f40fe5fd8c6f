package models

// Investor is a signed-up member of the investor pool. Username is the
// authentication key; uniqueness is not enforced at insert time.
type Investor struct {
	FullName string `json:"fullName"`
	Age      string `json:"age"`
	DOB      string `json:"dob"`
	Aadhar   string `json:"aadhar"`
	Role     string `json:"role"` // Student, Employee, Entrepreneur, Other
	Username string `json:"username"`
	Password string `json:"password"`
}
