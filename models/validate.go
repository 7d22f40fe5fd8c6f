package models

import "regexp"

// Result reports the outcome of a pre-insertion field check. The directory
// layer performs no validation of its own, so these checks run before a
// record is handed to it.
type Result struct {
	Reasons []string
}

func (r Result) OK() bool {
	return len(r.Reasons) == 0
}

var aadharPattern = regexp.MustCompile(`^\d{12}$`)

// ValidAadhar reports whether num is exactly twelve digits.
func ValidAadhar(num string) bool {
	return aadharPattern.MatchString(num)
}

func ValidateInvestorSignup(in Investor) Result {
	var reasons []string
	if !ValidAadhar(in.Aadhar) {
		reasons = append(reasons, "Aadhar number must be exactly 12 digits")
	}
	if len(in.Password) < 6 {
		reasons = append(reasons, "Password must be at least 6 characters")
	}
	return Result{Reasons: reasons}
}

func ValidateManagementSignup(in ManagementAdmin) Result {
	var reasons []string
	if len(in.Password) < 6 {
		reasons = append(reasons, "Password must be at least 6 characters")
	}
	return Result{Reasons: reasons}
}
