// Package entity defines shared response shapes for the web layer.
package entity

// ErrorMsg is the error body returned by every failing endpoint.
type ErrorMsg struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"` // field-level validation detail
}

// DashboardStats summarizes the headline counts shown on the dashboard.
type DashboardStats struct {
	TotalStudents   int `json:"totalStudents"`
	TotalStaff      int `json:"totalStaff"`
	TotalTeachers   int `json:"totalTeachers"`
	TotalAdmissions int `json:"totalAdmissions"`
}

// ServerStatus reports host health for the status endpoint.
type ServerStatus struct {
	Cpu      float64 `json:"cpu"`
	CpuCores int     `json:"cpuCores"`
	Mem      struct {
		Current uint64 `json:"current"`
		Total   uint64 `json:"total"`
	} `json:"mem"`
	Uptime  uint64 `json:"uptime"`
	Version string `json:"version"`
}

// TokenResponse carries an issued admin bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}
