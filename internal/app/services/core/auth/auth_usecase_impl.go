package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinregistry-service/internal/app/config"
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

const refreshTokenKeyFormat = "refresh_token:%s"

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	SessionService  contracts.SessionService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:  userRepository,
			RedisRepository: redisRepository,
			SessionService:  sessionService,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return authUsecaseInstance
}

// Login verifies the credentials, opens a redis-backed session, and issues
// an access token embedding the session id plus an opaque refresh token.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, request.Password) {
		uc.Log.Info("authUsecase.Login rejected credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	sessionID := uuid.NewString()
	refreshToken := uuid.NewString()
	refreshTTL := time.Duration(uc.InternalConfig.JWT.RefreshExpTimeInHour) * time.Hour

	session := &models.Session{
		SessionID:    sessionID,
		UserID:       user.ID,
		Username:     user.Username,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(refreshTTL),
	}
	if err := uc.SessionService.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	refreshKey := fmt.Sprintf(refreshTokenKeyFormat, refreshToken)
	if err := uc.RedisRepository.Set(ctx, refreshKey, sessionID, refreshTTL); err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.AccessExpTimeInMinute)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("user_id", user.ID),
	)

	return &responses.Login{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a live refresh token for a new access token. The
// refresh token itself stays valid until its original TTL runs out.
func (uc *authUsecase) Refresh(ctx context.Context, request *requests.RefreshToken) (*responses.RefreshToken, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	refreshKey := fmt.Sprintf(refreshTokenKeyFormat, request.RefreshToken)
	sessionID, err := uc.RedisRepository.Get(ctx, refreshKey)
	if err != nil {
		return nil, err
	}
	if sessionID == "" {
		return nil, exceptions.ErrRefreshTokenUnknown(nil)
	}

	// The session has to be alive too; logout revokes both.
	if _, err := uc.SessionService.GetSessionData(ctx, sessionID); err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.AccessExpTimeInMinute)
	if err != nil {
		return nil, err
	}

	return &responses.RefreshToken{AccessToken: accessToken}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	refreshKey := fmt.Sprintf(refreshTokenKeyFormat, session.RefreshToken)
	if err := uc.RedisRepository.Delete(ctx, refreshKey); err != nil {
		return err
	}

	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}
