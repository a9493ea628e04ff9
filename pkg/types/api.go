package types

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: failed to encode response
	Error string `json:"error" example:"failed to encode response"`
	// HTTP status code.
	// example: 500
	Code int `json:"code" example:"500"`
}

// ServiceStatus summarizes one managed child process for /status.
type ServiceStatus struct {
	// Service name.
	// example: backend
	Name string `json:"name" example:"backend"`
	// Command line used to launch the service.
	// example: uv run uvicorn main:app --reload --host 0.0.0.0 --port 8000
	Command string `json:"command" example:"uv run uvicorn main:app --reload --host 0.0.0.0 --port 8000"`
	// Working directory of the service.
	// example: spider
	Dir string `json:"dir" example:"spider"`
	// Process ID.
	// example: 12345
	PID int `json:"pid" example:"12345"`
	// Lifecycle state: running, exited, stopped or killed.
	// example: running
	State string `json:"state" example:"running"`
	// Spawn time in unix seconds.
	// example: 1700000000
	StartedUnix int64 `json:"started_unix" example:"1700000000"`
	// Resident set size in bytes (running services only).
	// example: 73400320
	RSSBytes uint64 `json:"rss_bytes,omitempty" example:"73400320"`
	// CPU usage percent since spawn (running services only).
	// example: 1.5
	CPUPercent float64 `json:"cpu_percent,omitempty" example:"1.5"`
}

// SessionStatus is returned by GET /status.
type SessionStatus struct {
	// Unique id of this dev session.
	// example: 4f1c2a1e-6a8f-4b8e-9a51-0c1d2e3f4a5b
	SessionID string `json:"session_id" example:"4f1c2a1e-6a8f-4b8e-9a51-0c1d2e3f4a5b"`
	// Orchestrator state.
	// example: RUNNING
	State string `json:"state" example:"RUNNING"`
	// Session start time in unix seconds.
	// example: 1700000000
	StartedUnix int64 `json:"started_unix" example:"1700000000"`
	// Frontend URL printed at startup.
	// example: http://localhost:5173
	FrontendURL string `json:"frontend_url" example:"http://localhost:5173"`
	// Backend URL printed at startup.
	// example: http://localhost:8000
	BackendURL string `json:"backend_url" example:"http://localhost:8000"`
	// Managed services in launch order.
	Services []ServiceStatus `json:"services"`
}
