package medical_tests

import (
	"context"
	"fmt"
	"mime/multipart"
	"sync"
	"time"

	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/constvars"
	"clinregistry-service/internal/pkg/dto/requests"
	"clinregistry-service/internal/pkg/dto/responses"
	"clinregistry-service/internal/pkg/exceptions"
	"clinregistry-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type medicalTestUsecase struct {
	MedicalTestRepository contracts.MedicalTestRepository
	PatientRepository     contracts.PatientRepository
	Storage               contracts.Storage
	SessionService        contracts.SessionService
	AuditPublisher        contracts.AuditPublisher
	Log                   *zap.Logger
}

var (
	medicalTestUsecaseInstance contracts.MedicalTestUsecase
	onceMedicalTestUsecase     sync.Once
)

func NewMedicalTestUsecase(
	medicalTestRepository contracts.MedicalTestRepository,
	patientRepository contracts.PatientRepository,
	storage contracts.Storage,
	sessionService contracts.SessionService,
	auditPublisher contracts.AuditPublisher,
	logger *zap.Logger,
) contracts.MedicalTestUsecase {
	onceMedicalTestUsecase.Do(func() {
		medicalTestUsecaseInstance = &medicalTestUsecase{
			MedicalTestRepository: medicalTestRepository,
			PatientRepository:     patientRepository,
			Storage:               storage,
			SessionService:        sessionService,
			AuditPublisher:        auditPublisher,
			Log:                   logger,
		}
	})
	return medicalTestUsecaseInstance
}

func (uc *medicalTestUsecase) CreateMedicalTest(ctx context.Context, request *requests.CreateMedicalTest, file multipart.File, fileHeader *multipart.FileHeader) (*responses.MedicalTest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalTestUsecase.CreateMedicalTest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("patient_id", request.PatientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourcePatient)
	}

	testDate, err := utils.ParseDate(request.TestDate)
	if err != nil {
		return nil, err
	}

	medicalTest := &models.MedicalTest{
		PatientID:  request.PatientID,
		TestName:   request.TestName,
		TestDate:   testDate,
		Score:      request.Score,
		ResultText: request.ResultText,
	}

	if session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData); err == nil {
		medicalTest.UploadedBy = &session.UserID
	}

	if file != nil {
		uploadedFile, err := uc.uploadTestFile(ctx, request.PatientID, file, fileHeader)
		if err != nil {
			return nil, err
		}
		medicalTest.UploadedFile = &uploadedFile
	}

	if err := uc.MedicalTestRepository.Insert(ctx, medicalTest); err != nil {
		return nil, err
	}

	uc.publishAudit(ctx, constvars.AuditActionCreate, medicalTest.ID, request.SessionData)

	response := medicalTest.ConvertIntoResponse()
	return &response, nil
}

func (uc *medicalTestUsecase) FindMedicalTestByID(ctx context.Context, medicalTestID int64) (*responses.MedicalTest, error) {
	medicalTest, err := uc.MedicalTestRepository.FindByID(ctx, medicalTestID)
	if err != nil {
		return nil, err
	}
	if medicalTest == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourceMedicalTest)
	}

	response := medicalTest.ConvertIntoResponse()
	return &response, nil
}

func (uc *medicalTestUsecase) FindMedicalTestsByPatientID(ctx context.Context, patientID int64) ([]responses.MedicalTest, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourcePatient)
	}

	medicalTests, err := uc.MedicalTestRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.MedicalTest, 0, len(medicalTests))
	for _, medicalTest := range medicalTests {
		response = append(response, medicalTest.ConvertIntoResponse())
	}
	return response, nil
}

func (uc *medicalTestUsecase) UpdateMedicalTest(ctx context.Context, request *requests.UpdateMedicalTest, file multipart.File, fileHeader *multipart.FileHeader) (*responses.MedicalTest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalTestUsecase.UpdateMedicalTest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("medical_test_id", request.MedicalTestID),
	)

	existing, err := uc.MedicalTestRepository.FindByID(ctx, request.MedicalTestID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourceMedicalTest)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDataNotFound(nil, constvars.ResourcePatient)
	}

	testDate, err := utils.ParseDate(request.TestDate)
	if err != nil {
		return nil, err
	}

	medicalTest := &models.MedicalTest{
		ID:           request.MedicalTestID,
		PatientID:    request.PatientID,
		TestName:     request.TestName,
		TestDate:     testDate,
		UploadedFile: existing.UploadedFile,
		Score:        request.Score,
		ResultText:   request.ResultText,
		UploadedBy:   existing.UploadedBy,
	}

	if file != nil {
		uploadedFile, err := uc.uploadTestFile(ctx, request.PatientID, file, fileHeader)
		if err != nil {
			return nil, err
		}
		medicalTest.UploadedFile = &uploadedFile
	}

	if err := uc.MedicalTestRepository.Update(ctx, medicalTest); err != nil {
		return nil, err
	}

	uc.publishAudit(ctx, constvars.AuditActionUpdate, medicalTest.ID, request.SessionData)

	response := medicalTest.ConvertIntoResponse()
	return &response, nil
}

func (uc *medicalTestUsecase) DeleteMedicalTest(ctx context.Context, medicalTestID int64, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalTestUsecase.DeleteMedicalTest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("medical_test_id", medicalTestID),
	)

	if err := uc.MedicalTestRepository.Delete(ctx, medicalTestID); err != nil {
		return err
	}

	uc.publishAudit(ctx, constvars.AuditActionDelete, medicalTestID, sessionData)
	return nil
}

func (uc *medicalTestUsecase) uploadTestFile(ctx context.Context, patientID int64, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	objectName := fmt.Sprintf(constvars.MedicalTestUploadPathFormat, patientID, fileHeader.Filename)
	return uc.Storage.UploadFile(ctx, file, fileHeader, objectName)
}

func (uc *medicalTestUsecase) publishAudit(ctx context.Context, action string, medicalTestID int64, sessionData string) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return
	}
	uc.AuditPublisher.Publish(ctx, &models.AuditEvent{
		ID:         uuid.NewString(),
		Action:     action,
		Resource:   constvars.ResourceMedicalTest,
		ResourceID: medicalTestID,
		ActorID:    session.UserID,
		Actor:      session.Username,
		OccurredAt: time.Now(),
	})
}
