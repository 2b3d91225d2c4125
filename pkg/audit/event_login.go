package audit

import "fmt"

// LoginEvent represents a login attempt
type LoginEvent struct {
	Username     string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e LoginEvent) MessageID() string {
	return "login"
}

func (e LoginEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s logged in", e.Username)
	}
	msg := fmt.Sprintf("%s failed to log in", e.Username)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e LoginEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e LoginEvent) Facility() int {
	return FacilityAuthPriv
}

func (e LoginEvent) StructuredData() map[string]map[string]string {
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
			"operation": "login",
			"result":    result,
		},
	}
}

// LogoutEvent represents a session being destroyed by the user
type LogoutEvent struct {
	Username string
	ClientIP string
}

func (e LogoutEvent) MessageID() string {
	return "logout"
}

func (e LogoutEvent) Message() string {
	return fmt.Sprintf("%s logged out", e.Username)
}

func (e LogoutEvent) Severity() Severity {
	return SeverityInfo
}

func (e LogoutEvent) Facility() int {
	return FacilityAuthPriv
}

func (e LogoutEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Username,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "logout",
			"result":    "success",
		},
	}
}
