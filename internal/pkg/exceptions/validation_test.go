package exceptions

import (
	"errors"
	"mindcare-service/internal/pkg/constvars"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type validationSample struct {
	Email           string   `validate:"required,email"`
	Password        string   `validate:"required,min=6"`
	ConfirmPassword string   `validate:"eqfield=Password"`
	Specialties     []string `validate:"min=1,dive,oneof=Anxiety Grief"`
}

func TestFormatFirstValidationError(t *testing.T) {
	validate := validator.New()

	t.Run("Required Field", func(t *testing.T) {
		err := validate.Struct(validationSample{Password: "secret1", ConfirmPassword: "secret1", Specialties: []string{"Grief"}})
		assert.Equal(t, "email is required", FormatFirstValidationError(err))
	})

	t.Run("Min Length", func(t *testing.T) {
		err := validate.Struct(validationSample{Email: "a@b.co", Password: "abc", ConfirmPassword: "abc", Specialties: []string{"Grief"}})
		assert.Equal(t, "password must be at least 6 characters long", FormatFirstValidationError(err))
	})

	t.Run("Eqfield Uses Lowercase Param", func(t *testing.T) {
		err := validate.Struct(validationSample{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret2", Specialties: []string{"Grief"}})
		assert.Equal(t, "confirmpassword must match password", FormatFirstValidationError(err))
	})

	t.Run("Slice Element Index Is Dropped", func(t *testing.T) {
		err := validate.Struct(validationSample{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1", Specialties: []string{"Cooking"}})
		assert.Equal(t, "specialties must be one of [Anxiety, Grief]", FormatFirstValidationError(err))
	})

	t.Run("Non Validation Error", func(t *testing.T) {
		assert.Equal(t, constvars.ErrDevInvalidInput, FormatFirstValidationError(errors.New("boom")))
	})

	t.Run("Nil Error", func(t *testing.T) {
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(nil))
	})
}

func TestFormatAllValidationErrors(t *testing.T) {
	validate := validator.New()
	err := validate.Struct(validationSample{Specialties: []string{}})

	message := FormatAllValidationErrors(err)
	assert.Contains(t, message, "email is required")
	assert.Contains(t, message, "password is required")
	assert.Contains(t, message, "specialties must be at least 1 characters long")
}

func TestBuildNewCustomError(t *testing.T) {
	t.Run("Keeps Cause For errors.Is", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := ErrDocstoreQuery(cause, "appointments")

		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, constvars.StatusBadGateway, err.StatusCode)
		assert.Contains(t, err.DevMessage, "appointments")
		assert.Len(t, err.Locations, 1)
	})

	t.Run("Carries Locations Of Wrapped CustomError", func(t *testing.T) {
		inner := ErrDocstoreQuery(errors.New("timeout"), "chats")
		outer := ErrDashboardFetch(inner, constvars.DashboardFetcherRecentMessages)

		assert.Len(t, outer.Locations, 2)
		assert.Contains(t, outer.DevMessage, "chats")
		assert.True(t, errors.Is(outer, inner))
	})
}
