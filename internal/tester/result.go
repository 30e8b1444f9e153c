package tester

// Code is the stable, caller-translatable vocabulary of probe outcomes.
type Code string

// Probe outcome codes.
const (
	CodeLocalConnectionSuccess Code = "LOCAL_CONNECTION_SUCCESS"
	CodeLocalHTTPError         Code = "LOCAL_HTTP_ERROR"
	CodeLocalConnectionError   Code = "LOCAL_CONNECTION_ERROR"
	CodeConnectionSuccess      Code = "CONNECTION_SUCCESS"
	CodeTestFailed             Code = "TEST_FAILED"
	CodeTestNotSupported       Code = "TEST_NOT_SUPPORTED"
)

// Result is the transient outcome of a single connectivity probe. It is
// never persisted by the tester itself.
type Result struct {
	Success     bool           `json:"success"`
	MessageCode Code           `json:"message_code"`
	Message     string         `json:"message"`
	Details     map[string]any `json:"details,omitempty"`
}

func success(code Code, message string, details map[string]any) Result {
	return Result{Success: true, MessageCode: code, Message: message, Details: details}
}

func failure(code Code, message string, details map[string]any) Result {
	return Result{Success: false, MessageCode: code, Message: message, Details: details}
}
