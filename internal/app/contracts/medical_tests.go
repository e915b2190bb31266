package contracts

import (
	"context"
	"mime/multipart"

	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/dto/requests"
	"clinregistry-service/internal/pkg/dto/responses"
)

type MedicalTestRepository interface {
	FindByPatientID(ctx context.Context, patientID int64) ([]models.MedicalTest, error)
	FindByID(ctx context.Context, medicalTestID int64) (*models.MedicalTest, error)
	Insert(ctx context.Context, medicalTest *models.MedicalTest) error
	Update(ctx context.Context, medicalTest *models.MedicalTest) error
	Delete(ctx context.Context, medicalTestID int64) error
}

type MedicalTestUsecase interface {
	CreateMedicalTest(ctx context.Context, request *requests.CreateMedicalTest, file multipart.File, fileHeader *multipart.FileHeader) (*responses.MedicalTest, error)
	FindMedicalTestByID(ctx context.Context, medicalTestID int64) (*responses.MedicalTest, error)
	FindMedicalTestsByPatientID(ctx context.Context, patientID int64) ([]responses.MedicalTest, error)
	UpdateMedicalTest(ctx context.Context, request *requests.UpdateMedicalTest, file multipart.File, fileHeader *multipart.FileHeader) (*responses.MedicalTest, error)
	DeleteMedicalTest(ctx context.Context, medicalTestID int64, sessionData string) error
}
