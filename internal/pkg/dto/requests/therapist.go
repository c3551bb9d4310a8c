package requests

type RegisterTherapist struct {
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=6"`
	ConfirmPassword string   `json:"confirm_password" validate:"required,eqfield=Password"`
	DisplayName     string   `json:"display_name" validate:"required,max=100"`
	Bio             string   `json:"bio" validate:"max=2000"`
	Specialties     []string `json:"specialties" validate:"required,min=1,dive,specialty"`
	License         string   `json:"license" validate:"required,max=100"`
}
