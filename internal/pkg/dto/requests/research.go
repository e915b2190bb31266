package requests

import "time"

// ResearchQuery carries the already-parsed filter criteria. ParamCodes is
// the only mandatory filter; everything else narrows the result set.
type ResearchQuery struct {
	DiagnosisMKB *string
	AgeMin       *int
	AgeMax       *int
	ParamCodes   []string `validate:"required,min=1"`
	StartDate    *time.Time
	EndDate      *time.Time
}
