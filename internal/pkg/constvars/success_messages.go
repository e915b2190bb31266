package constvars

const (
	ResponseUnknown = "unknown"

	// Auth messages
	LoginSuccessMessage   = "successfully login"
	RefreshSuccessMessage = "token refreshed successfully"
	LogoutSuccessMessage  = "successfully logout"

	// Patient messages
	CreatePatientSuccessMessage      = "patient created successfully"
	GetPatientSuccessMessage         = "get patient successfully"
	GetPatientsSuccessMessage        = "get patients successfully"
	UpdatePatientSuccessMessage      = "patient updated successfully"
	DeletePatientSuccessMessage      = "patient deleted successfully"
	GetPatientDynamicsSuccessMessage = "get patient dynamics successfully"
	GetPatientTestsSuccessMessage    = "get patient medical tests successfully"
	GetPatientEpisodesSuccessMessage = "get patient episodes successfully"

	// Episode messages
	CreateEpisodeSuccessMessage = "episode created successfully"
	GetEpisodeSuccessMessage    = "get episode successfully"
	GetEpisodesSuccessMessage   = "get episodes successfully"
	UpdateEpisodeSuccessMessage = "episode updated successfully"
	DeleteEpisodeSuccessMessage = "episode deleted successfully"

	// Observation messages
	CreateObservationSuccessMessage = "observation created successfully"
	GetObservationSuccessMessage    = "get observation successfully"
	GetObservationsSuccessMessage   = "get observations successfully"
	UpdateObservationSuccessMessage = "observation updated successfully"
	DeleteObservationSuccessMessage = "observation deleted successfully"

	// Medical test messages
	CreateMedicalTestSuccessMessage = "medical test created successfully"
	GetMedicalTestSuccessMessage    = "get medical test successfully"
	GetMedicalTestsSuccessMessage   = "get medical tests successfully"
	UpdateMedicalTestSuccessMessage = "medical test updated successfully"
	DeleteMedicalTestSuccessMessage = "medical test deleted successfully"

	// Reference data messages
	GetParametersSuccessMessage  = "get parameters successfully"
	SearchMKBCodesSuccessMessage = "search mkb codes successfully"

	// Research messages
	ResearchQuerySuccessMessage = "research query executed successfully"
)
