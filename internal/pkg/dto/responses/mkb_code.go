package responses

type MKBCode struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
