package errors

// ErrorCode is a stable machine-readable identifier carried on every AppError
type ErrorCode int32

const (
	ErrorCode_OK ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS
	ErrorCode_CONFLICT
	ErrorCode_SYNC_IN_PROGRESS
	ErrorCode_SYNC_FAILED
	ErrorCode_UNKNOWN_SOURCE
	ErrorCode_WORKPLAN_INVALID
	ErrorCode_UPSTREAM_UNAVAILABLE
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_OK:                   "OK",
	ErrorCode_INTERNAL:             "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:     "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:            "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:       "ALREADY_EXISTS",
	ErrorCode_CONFLICT:             "CONFLICT",
	ErrorCode_SYNC_IN_PROGRESS:     "SYNC_IN_PROGRESS",
	ErrorCode_SYNC_FAILED:          "SYNC_FAILED",
	ErrorCode_UNKNOWN_SOURCE:       "UNKNOWN_SOURCE",
	ErrorCode_WORKPLAN_INVALID:     "WORKPLAN_INVALID",
	ErrorCode_UPSTREAM_UNAVAILABLE: "UPSTREAM_UNAVAILABLE",
}

// String returns the name used in API responses and logs
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
