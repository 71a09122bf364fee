package logging

// Shared attribute keys so log lines stay grep-able across packages.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldSource     = "source"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldRemoteAddr = "remote_addr"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
)
