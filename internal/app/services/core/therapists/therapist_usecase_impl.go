package therapists

import (
	"context"
	"errors"
	"fmt"
	"mindcare-service/internal/app/config"
	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/dto/requests"
	"mindcare-service/internal/pkg/dto/responses"
	"mindcare-service/internal/pkg/exceptions"
	"mindcare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const registrationLockKeyPrefix = "registration_lock:"

type therapistUsecase struct {
	UserRepository  contracts.UserRepository
	LockerService   contracts.LockerService
	SessionService  contracts.SessionService
	MailerService   contracts.MailerService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	now             func() time.Time
}

func NewTherapistUsecase(
	userRepository contracts.UserRepository,
	lockerService contracts.LockerService,
	sessionService contracts.SessionService,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.TherapistUsecase {
	return &therapistUsecase{
		UserRepository:  userRepository,
		LockerService:   lockerService,
		SessionService:  sessionService,
		MailerService:   mailerService,
		InternalConfig:  internalConfig,
		Log:             logger,
		now:             time.Now,
	}
}

func (uc *therapistUsecase) RegisterTherapist(ctx context.Context, request *requests.RegisterTherapist) (*responses.RegisterTherapist, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("therapistUsecase.RegisterTherapist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	if request.Password != request.ConfirmPassword {
		return nil, exceptions.ErrPasswordDoNotMatch(nil)
	}

	lockKey := registrationLockKeyPrefix + request.Email
	lockTimeout := time.Duration(uc.InternalConfig.App.RegistrationLockTimeoutInSeconds) * time.Second
	acquired, lockOwner, err := uc.LockerService.TryLock(ctx, lockKey, lockTimeout)
	if err != nil {
		uc.Log.Error("therapistUsecase.RegisterTherapist error acquiring registration lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrRegistrationLocked(nil, request.Email)
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockOwner); err != nil {
			uc.Log.Warn("therapistUsecase.RegisterTherapist error releasing registration lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("therapistUsecase.RegisterTherapist error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(errors.New(constvars.ErrDevEmailAlreadyExists))
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := uc.now()
	user := &models.User{
		Email:        request.Email,
		DisplayName:  request.DisplayName,
		PasswordHash: hashedPassword,
		Role:         constvars.RoleTherapist,
		Bio:          request.Bio,
		Specialties:  request.Specialties,
		License:      request.License,
	}
	user.SetCreatedAtUpdatedAt(now)

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("therapistUsecase.RegisterTherapist error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	sessionDuration := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	session := &models.Session{
		SessionID:      utils.GenerateSessionID(),
		UserID:         userID,
		PractitionerID: userID,
		Role:           constvars.RoleTherapist,
		ExpiresAt:      now.Add(sessionDuration),
	}
	err = uc.SessionService.CreateSession(ctx, session, sessionDuration)
	if err != nil {
		uc.Log.Error("therapistUsecase.RegisterTherapist error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.sendWelcomeEmail(ctx, requestID, user)

	uc.Log.Info("therapistUsecase.RegisterTherapist succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	return &responses.RegisterTherapist{
		UserID:      userID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		Token:       token,
		ExpiresAt:   session.ExpiresAt,
	}, nil
}

// sendWelcomeEmail only logs failures; the account already exists.
func (uc *therapistUsecase) sendWelcomeEmail(ctx context.Context, requestID string, user *models.User) {
	payload := &requests.EmailPayload{
		Subject:  constvars.WelcomeEmailSubject,
		From:     uc.InternalConfig.Mailer.EmailSender,
		To:       []string{user.Email},
		HTMLCode: fmt.Sprintf(constvars.WelcomeEmailHTMLFormat, user.DisplayName),
		Metadata: map[string]string{"role": user.Role},
	}

	err := uc.MailerService.SendEmail(ctx, payload)
	if err != nil {
		uc.Log.Warn("therapistUsecase.sendWelcomeEmail error publishing welcome email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, user.Email),
			zap.Error(err),
		)
	}
}

func (uc *therapistUsecase) GetTherapistProfile(ctx context.Context, userID string) (*responses.TherapistProfile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("therapistUsecase.GetTherapistProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != constvars.RoleTherapist {
		return nil, exceptions.ErrMongoDBNotFound(errors.New(constvars.ErrDevDBDocumentNotFound))
	}

	return &responses.TherapistProfile{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		Bio:         user.Bio,
		Specialties: user.Specialties,
		License:     user.License,
		CreatedAt:   user.CreatedAt,
	}, nil
}
