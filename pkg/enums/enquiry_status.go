package enums

import "fmt"

// EnquiryStatus is the triage state of a customer enquiry. The stored values
// are capitalized; that matches the rows the admin frontend filters on.
type EnquiryStatus string

const (
	EnquiryStatusPending   EnquiryStatus = "Pending"
	EnquiryStatusCompleted EnquiryStatus = "Completed"
)

var validEnquiryStatuses = []EnquiryStatus{
	EnquiryStatusPending,
	EnquiryStatusCompleted,
}

// IsValid checks whether the given status matches the canonical enum.
func (s EnquiryStatus) IsValid() bool {
	for _, candidate := range validEnquiryStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func (s EnquiryStatus) String() string {
	return string(s)
}

// ParseEnquiryStatus converts raw strings into EnquiryStatus. Both
// transitions are permitted, so parsing is the only gate.
func ParseEnquiryStatus(value string) (EnquiryStatus, error) {
	for _, candidate := range validEnquiryStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid enquiry status %q", value)
}
