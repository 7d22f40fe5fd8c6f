package models

// Volunteer is a ground verification agent registered by a management admin.
// ID is stamped at insert time (unix milliseconds); rapid-fire inserts in the
// same millisecond can collide, which is a known limitation of the demo.
type Volunteer struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	DOB        string `json:"dob"`
	Department string `json:"department"`
	Aadhar     string `json:"aadhar"`
	Phone      string `json:"phone"`
}
