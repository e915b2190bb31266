package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY ContextKey = "session_data"
)

const (
	ResourcePatient     = "patients"
	ResourceEpisode     = "episodes"
	ResourceObservation = "observations"
	ResourceMedicalTest = "medical-tests"
	ResourceParameter   = "parameters"
	ResourceMKBCode     = "mkb-codes"
)

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

const (
	// DateOnlyFormat is the calendar-date format used across query
	// parameters and multipart form fields.
	DateOnlyFormat = "2006-01-02"

	// MedicalTestUploadPathFormat groups uploaded artifacts per patient,
	// preserving the original filename.
	MedicalTestUploadPathFormat = "patient_files/patient_%d/tests/%s"
)
