package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	UserAlreadyExistsCode    = 1001
	UserAlreadyExistsMessage = "User already exist"
	UserNotFoundCode         = 1002
	UserNotFoundMessage      = "User not found"
	InvalidUserIDCode        = 1003
	InvalidUserIDMessage     = "invalid user id"
	SendMailFailedCode       = 2001
	SendMailFailedMessage    = "email could not be sent"

	ValidationErrorCode    = 6000
	ValidationErrorMessage = "Validation error"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case UserAlreadyExistsCode:
		errorStruct.ErrorCode = UserAlreadyExistsCode
		errorStruct.ErrorMessage = UserAlreadyExistsMessage
	case UserNotFoundCode:
		errorStruct.ErrorCode = UserNotFoundCode
		errorStruct.ErrorMessage = UserNotFoundMessage
	case InvalidUserIDCode:
		errorStruct.ErrorCode = InvalidUserIDCode
		errorStruct.ErrorMessage = InvalidUserIDMessage
	case SendMailFailedCode:
		errorStruct.ErrorCode = SendMailFailedCode
		errorStruct.ErrorMessage = SendMailFailedMessage
	}

	return errorStruct
}
