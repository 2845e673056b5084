package errors

// ErrorCode identifies an application error category
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1004
	ErrorCode_CONFLICT         ErrorCode = 1005

	// Project / transcript
	ErrorCode_PROJECT_NOT_FOUND ErrorCode = 2000
	ErrorCode_TRANSCRIPT_EMPTY  ErrorCode = 2001
	ErrorCode_CHAPTER_NOT_FOUND ErrorCode = 2002

	// Generation
	ErrorCode_GENERATION_FAILED      ErrorCode = 3000
	ErrorCode_GENERATION_IN_PROGRESS ErrorCode = 3001

	// Database
	ErrorCode_DB_QUERY_FAILED ErrorCode = 4000
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                "OK",
	ErrorCode_INTERNAL:               "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:       "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:              "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:         "ALREADY_EXISTS",
	ErrorCode_INVALID_PAYLOAD:        "INVALID_PAYLOAD",
	ErrorCode_CONFLICT:               "CONFLICT",
	ErrorCode_PROJECT_NOT_FOUND:      "PROJECT_NOT_FOUND",
	ErrorCode_TRANSCRIPT_EMPTY:       "TRANSCRIPT_EMPTY",
	ErrorCode_CHAPTER_NOT_FOUND:      "CHAPTER_NOT_FOUND",
	ErrorCode_GENERATION_FAILED:      "GENERATION_FAILED",
	ErrorCode_GENERATION_IN_PROGRESS: "GENERATION_IN_PROGRESS",
	ErrorCode_DB_QUERY_FAILED:        "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
