package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	NotAuthenticatedCode    = 1001
	NotAuthenticatedMessage = "authentication required"
	ForbiddenCode           = 1002
	ForbiddenMessage        = "admin access required"
	InvalidIDTokenCode      = 1003
	InvalidIDTokenMessage   = "google sign-in token is invalid"

	AlreadyRegisteredCode       = 2001
	AlreadyRegisteredMessage    = "a registration already exists for this email"
	RegistrationNotFoundCode    = 2002
	RegistrationNotFoundMessage = "registration not found"

	TicketNotFoundCode        = 3001
	TicketNotFoundMessage     = "no ticket matches this verification code"
	TicketRenderFailedCode    = 3002
	TicketRenderFailedMessage = "ticket could not be generated"
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
}

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
	case NotAuthenticatedCode:
		errorStruct.ErrorCode = NotAuthenticatedCode
		errorStruct.ErrorMessage = NotAuthenticatedMessage
	case ForbiddenCode:
		errorStruct.ErrorCode = ForbiddenCode
		errorStruct.ErrorMessage = ForbiddenMessage
	case InvalidIDTokenCode:
		errorStruct.ErrorCode = InvalidIDTokenCode
		errorStruct.ErrorMessage = InvalidIDTokenMessage
	case AlreadyRegisteredCode:
		errorStruct.ErrorCode = AlreadyRegisteredCode
		errorStruct.ErrorMessage = AlreadyRegisteredMessage
	case RegistrationNotFoundCode:
		errorStruct.ErrorCode = RegistrationNotFoundCode
		errorStruct.ErrorMessage = RegistrationNotFoundMessage
	case TicketNotFoundCode:
		errorStruct.ErrorCode = TicketNotFoundCode
		errorStruct.ErrorMessage = TicketNotFoundMessage
	case TicketRenderFailedCode:
		errorStruct.ErrorCode = TicketRenderFailedCode
		errorStruct.ErrorMessage = TicketRenderFailedMessage
	}

	return errorStruct
}
