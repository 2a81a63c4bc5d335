package errors

// ErrorCode identifies an application error category on the wire.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK               ErrorCode = 0
	ErrorCode_INTERNAL              ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT      ErrorCode = 1001
	ErrorCode_NOT_FOUND             ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD       ErrorCode = 1003
	ErrorCode_MEETING_NOT_FOUND     ErrorCode = 2000
	ErrorCode_ACTION_ITEM_NOT_FOUND ErrorCode = 2001
	ErrorCode_INVALID_STATUS        ErrorCode = 2002
	ErrorCode_INVALID_DUE_DATE      ErrorCode = 2003
	ErrorCode_EMPTY_QUERY           ErrorCode = 3000
	ErrorCode_AI_SUMMARY_FAILED     ErrorCode = 3001
	ErrorCode_DB_CONNECTION_FAILED  ErrorCode = 4000
	ErrorCode_DB_QUERY_FAILED       ErrorCode = 4001
	ErrorCode_DB_TRANSACTION_FAILED ErrorCode = 4002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:               "HTTP_OK",
	ErrorCode_INTERNAL:              "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:      "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:             "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:       "INVALID_PAYLOAD",
	ErrorCode_MEETING_NOT_FOUND:     "MEETING_NOT_FOUND",
	ErrorCode_ACTION_ITEM_NOT_FOUND: "ACTION_ITEM_NOT_FOUND",
	ErrorCode_INVALID_STATUS:        "INVALID_STATUS",
	ErrorCode_INVALID_DUE_DATE:      "INVALID_DUE_DATE",
	ErrorCode_EMPTY_QUERY:           "EMPTY_QUERY",
	ErrorCode_AI_SUMMARY_FAILED:     "AI_SUMMARY_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:  "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:       "DB_QUERY_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED: "DB_TRANSACTION_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
