package constvars

// Validation messages keyed by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"datetime": "must be a valid date in YYYY-MM-DD format",
	"numeric":  "must be a number",
	"gte":      "must be greater than or equal to %s",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientResourceNotFound              = "the requested record was not found"
	ErrClientClinicIDAlreadyUsed           = "clinic id already used by another patient"
	ErrClientParameterInUse                = "parameter code is still referenced by observations"
	ErrClientMissingPatientIDFilter        = "query parameter 'patient_id' is required"
	ErrClientMissingParamCodes             = "at least one 'param_codes' query parameter is required"
	ErrClientMissingDynamicsParam          = "at least one 'param' query parameter is required"
	ErrClientAgeMustBeInteger              = "age parameters must be integers"
	ErrClientScoreMustBeNumber             = "score must be a number"
	ErrClientInvalidDateFormat             = "dates must use the YYYY-MM-DD format"
	ErrClientEpisodeDatesInverted          = "end_date must not be earlier than start_date"
	ErrClientFileTooLarge                  = "uploaded file exceeds the allowed size"
)
