package models

import (
	"path"

	"clinregistry-service/internal/pkg/constvars"
	"clinregistry-service/internal/pkg/dto/responses"
)

func (p Patient) ConvertIntoResponse() responses.Patient {
	return responses.Patient{
		ID:                  p.ID,
		LastName:            p.LastName,
		FirstName:           p.FirstName,
		MiddleName:          p.MiddleName,
		DateOfBirth:         p.DateOfBirth.Format(constvars.DateOnlyFormat),
		ClinicID:            p.ClinicID,
		PrimaryDiagnosisMKB: p.PrimaryDiagnosisMKB,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func (e Episode) ConvertIntoResponse() responses.Episode {
	var endDate *string
	if e.EndDate != nil {
		formatted := e.EndDate.Format(constvars.DateOnlyFormat)
		endDate = &formatted
	}
	return responses.Episode{
		ID:        e.ID,
		PatientID: e.PatientID,
		StartDate: e.StartDate.Format(constvars.DateOnlyFormat),
		EndDate:   endDate,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (o Observation) ConvertIntoResponse() responses.Observation {
	return responses.Observation{
		ID:            o.ID,
		PatientID:     o.PatientID,
		ParameterCode: o.ParameterCode,
		ParameterName: o.ParameterName,
		ParameterUnit: o.ParameterUnit,
		Timestamp:     o.Timestamp,
		Value:         o.Value,
		ValueNumeric:  o.ValueNumeric,
		EpisodeID:     o.EpisodeID,
		RecordedBy:    o.RecordedBy,
	}
}

func (m MedicalTest) ConvertIntoResponse() responses.MedicalTest {
	var filename *string
	if m.UploadedFile != nil {
		base := path.Base(*m.UploadedFile)
		filename = &base
	}
	return responses.MedicalTest{
		ID:           m.ID,
		PatientID:    m.PatientID,
		TestName:     m.TestName,
		TestDate:     m.TestDate.Format(constvars.DateOnlyFormat),
		UploadedFile: m.UploadedFile,
		Filename:     filename,
		Score:        m.Score,
		ResultText:   m.ResultText,
		UploadedBy:   m.UploadedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (p ParameterCode) ConvertIntoResponse() responses.ParameterCode {
	return responses.ParameterCode{
		Code:        p.Code,
		Name:        p.Name,
		Unit:        p.Unit,
		Description: p.Description,
		IsNumeric:   p.IsNumeric,
	}
}

func (m MKBCode) ConvertIntoResponse() responses.MKBCode {
	return responses.MKBCode{
		Code: m.Code,
		Name: m.Name,
	}
}
