package response

const (
	MessageSuccess          = "Success"
	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Something went wrong"
	ValidationErrorCode     = 422
)
