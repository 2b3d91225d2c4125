package audit

import "fmt"

// UploadEvent represents an image upload attempt
type UploadEvent struct {
	Username     string
	ClientIP     string
	Filename     string // server-generated storage name
	Slug         string
	Success      bool
	ErrorMessage string
}

func (e UploadEvent) MessageID() string {
	return "upload"
}

func (e UploadEvent) Message() string {
	if e.Success {
		msg := fmt.Sprintf("%s uploaded %s", e.Username, e.Filename)
		if e.Slug != "" {
			msg += fmt.Sprintf(" (slug %s)", e.Slug)
		}
		return msg
	}
	msg := fmt.Sprintf("%s failed to upload an image", e.Username)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e UploadEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e UploadEvent) Facility() int {
	return FacilityAuth
}

func (e UploadEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.Username,
		},
		SDIDSubject: {
			"filename": e.Filename,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "upload",
			"result":    result,
		},
	}
	if e.Slug != "" {
		sd[SDIDSubject]["slug"] = e.Slug
	}
	return sd
}
