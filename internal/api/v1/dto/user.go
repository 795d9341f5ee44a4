package dto

// UserCreateDTO is used for incoming sign-up requests. The password arrives
// in plaintext and is hashed before storage.
type UserCreateDTO struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
}

// UserResponseDTO is returned for the current-user endpoint. It carries only
// the public fields; the password hash is never serialized.
type UserResponseDTO struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// userMessages maps violated rules on UserCreateDTO fields to the
// human-readable messages returned to the client.
var userMessages = map[string]string{
	"FirstName":    "A first name is required",
	"LastName":     "A last name is required",
	"EmailAddress": "A valid email address is required",
	"Password":     "A password is required",
}

// ValidationMessages translates a validator error on UserCreateDTO into the
// ordered list of rule-violation messages.
func (d *UserCreateDTO) ValidationMessages(err error) []string {
	return translate(err, userMessages)
}
