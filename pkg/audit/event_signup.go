package audit

import "fmt"

// SignupEvent represents an account registration attempt
type SignupEvent struct {
	Username     string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e SignupEvent) MessageID() string {
	return "signup"
}

func (e SignupEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("account %s registered", e.Username)
	}
	msg := fmt.Sprintf("failed to register account %s", e.Username)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e SignupEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e SignupEvent) Facility() int {
	return FacilityAuth
}

func (e SignupEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Username,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "signup",
			"result":    result,
		},
	}
}
