package constvars

const (
	URLParamPatientID     = "patient_id"
	URLParamEpisodeID     = "episode_id"
	URLParamObservationID = "observation_id"
	URLParamMedicalTestID = "medical_test_id"
)

const (
	URLQueryParamSearch        = "search"
	URLQueryParamParam         = "param"
	URLQueryParamPatientID     = "patient_id"
	URLQueryParamParameterCode = "parameter_code"
	URLQueryParamEpisodeID     = "episode_id"
	URLQueryParamDiagnosisMKB  = "diagnosis_mkb"
	URLQueryParamAgeMin        = "age_min"
	URLQueryParamAgeMax        = "age_max"
	URLQueryParamParamCodes    = "param_codes"
	URLQueryParamStartDate     = "start_date"
	URLQueryParamEndDate       = "end_date"
	URLQueryParamFormat        = "format"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

const (
	FormFieldPatientID    = "patient_id"
	FormFieldTestName     = "test_name"
	FormFieldTestDate     = "test_date"
	FormFieldScore        = "score"
	FormFieldResultText   = "result_text"
	FormFieldUploadedFile = "uploaded_file"
)
