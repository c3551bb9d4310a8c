package therapists

import (
	"context"
	"errors"
	"mindcare-service/internal/app/config"
	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/dto/requests"
	"mindcare-service/internal/pkg/exceptions"
	"mindcare-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, owner string) error {
	args := m.Called(ctx, key, owner)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	args := m.Called(ctx, session, exp)
	return args.Error(0)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

type MockMailerService struct {
	mock.Mock
}

func (m *MockMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type therapistMocks struct {
	users   *MockUserRepository
	locker  *MockLockerService
	session *MockSessionService
	mailer  *MockMailerService
}

var registrationNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newTestTherapistUsecase() (*therapistUsecase, therapistMocks) {
	mocks := therapistMocks{
		users:   new(MockUserRepository),
		locker:  new(MockLockerService),
		session: new(MockSessionService),
		mailer:  new(MockMailerService),
	}
	uc := &therapistUsecase{
		UserRepository:  mocks.users,
		LockerService:   mocks.locker,
		SessionService:  mocks.session,
		MailerService:   mocks.mailer,
		InternalConfig: &config.InternalConfig{
			App:    config.App{RegistrationLockTimeoutInSeconds: 10},
			JWT:    config.AppJWT{Secret: "test-secret", ExpTimeInHour: 2},
			Mailer: config.AppMailer{EmailSender: "no-reply@mindcare.test"},
		},
		Log: zap.NewNop(),
		now: func() time.Time { return registrationNow },
	}
	return uc, mocks
}

func validRegistration() *requests.RegisterTherapist {
	return &requests.RegisterTherapist{
		Email:           "dr.sari@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		DisplayName:     "Dr. Sari",
		Bio:             "CBT practitioner",
		Specialties:     []string{"Anxiety", "Grief"},
		License:         "LIC-001",
	}
}

const lockKey = "registration_lock:dr.sari@example.com"

func TestTherapistUsecase_RegisterTherapist(t *testing.T) {
	uc, mocks := newTestTherapistUsecase()
	request := validRegistration()

	mocks.locker.On("TryLock", mock.Anything, lockKey, 10*time.Second).Return(true, "owner-1", nil)
	mocks.locker.On("Unlock", mock.Anything, lockKey, "owner-1").Return(nil)
	mocks.users.On("FindByEmail", mock.Anything, request.Email).Return(nil, nil)
	mocks.users.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
		return user.Role == constvars.RoleTherapist &&
			user.PasswordHash != request.Password &&
			utils.CheckPasswordHash(request.Password, user.PasswordHash) &&
			user.CreatedAt.Equal(registrationNow)
	})).Return("665f1f77bcf86cd799439011", nil)
	mocks.session.On("CreateSession", mock.Anything, mock.MatchedBy(func(session *models.Session) bool {
		return session.PractitionerID == "665f1f77bcf86cd799439011" && session.ExpiresAt.Equal(registrationNow.Add(2*time.Hour))
	}), 2*time.Hour).Return(nil)
	mocks.mailer.On("SendEmail", mock.Anything, mock.MatchedBy(func(payload *requests.EmailPayload) bool {
		return len(payload.To) == 1 && payload.To[0] == request.Email
	})).Return(errors.New("broker down"))

	response, err := uc.RegisterTherapist(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, "665f1f77bcf86cd799439011", response.UserID)
	assert.Equal(t, constvars.RoleTherapist, response.Role)
	assert.NotEmpty(t, response.Token)

	sessionID, err := utils.ParseJWT(response.Token, "test-secret")
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)

	mocks.locker.AssertExpectations(t)
	mocks.users.AssertExpectations(t)
	mocks.session.AssertExpectations(t)
	mocks.mailer.AssertExpectations(t)
}

func TestTherapistUsecase_RegisterTherapistDuplicateEmail(t *testing.T) {
	uc, mocks := newTestTherapistUsecase()
	request := validRegistration()

	mocks.locker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(true, "owner-1", nil)
	mocks.locker.On("Unlock", mock.Anything, lockKey, "owner-1").Return(nil)
	mocks.users.On("FindByEmail", mock.Anything, request.Email).Return(&models.User{ID: "existing"}, nil)

	_, err := uc.RegisterTherapist(context.Background(), request)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientEmailAlreadyExists, customErr.ClientMessage)
	mocks.users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	mocks.locker.AssertCalled(t, "Unlock", mock.Anything, lockKey, "owner-1")
}

func TestTherapistUsecase_RegisterTherapistLockHeld(t *testing.T) {
	uc, mocks := newTestTherapistUsecase()

	mocks.locker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(false, "", nil)

	_, err := uc.RegisterTherapist(context.Background(), validRegistration())

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	mocks.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	mocks.locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
}

func TestTherapistUsecase_RegisterTherapistPasswordMismatch(t *testing.T) {
	uc, mocks := newTestTherapistUsecase()
	request := validRegistration()
	request.ConfirmPassword = "different"

	_, err := uc.RegisterTherapist(context.Background(), request)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientPasswordsDoNotMatch, customErr.ClientMessage)
	mocks.locker.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
}

func TestTherapistUsecase_GetTherapistProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		uc, mocks := newTestTherapistUsecase()
		user := &models.User{ID: "u-1", Email: "dr.sari@example.com", Role: constvars.RoleTherapist, Specialties: []string{"Grief"}}
		mocks.users.On("FindByID", mock.Anything, "u-1").Return(user, nil)

		profile, err := uc.GetTherapistProfile(context.Background(), "u-1")

		require.NoError(t, err)
		assert.Equal(t, "dr.sari@example.com", profile.Email)
		assert.Equal(t, []string{"Grief"}, profile.Specialties)
	})

	t.Run("missing or not a therapist", func(t *testing.T) {
		uc, mocks := newTestTherapistUsecase()
		mocks.users.On("FindByID", mock.Anything, "u-2").Return(nil, nil)
		mocks.users.On("FindByID", mock.Anything, "u-3").Return(&models.User{ID: "u-3", Role: constvars.RolePatient}, nil)

		for _, id := range []string{"u-2", "u-3"} {
			_, err := uc.GetTherapistProfile(context.Background(), id)

			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		}
	})
}
