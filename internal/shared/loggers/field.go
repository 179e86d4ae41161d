package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldClient     = "client"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldEventID     = "event_id"
	FieldSequence    = "sequence"
	FieldWindowStart = "window_start"
	FieldCutoff      = "cutoff"
	FieldPartitionId = "partition_id"
)
