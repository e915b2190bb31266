package models

type MKBCode struct {
	Code string
	Name string
}
