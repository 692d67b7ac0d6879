package account

import (
	"fmt"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

const (
	CodePasswordMismatch = "password_equals_confirm_password"
	CodeCanRegister      = "can_register"
)

var LoginSchema = func() *validator.Schema[LoginRequest, validator.NoContext] {
	s := validator.New[LoginRequest, validator.NoContext]("login")
	validator.Field(s, "username", func(r LoginRequest) string { return r.Username },
		validator.Length(3, 20).
			WithMessage("username length must be between 3 and 20").
			WithTranslation("account.username_length"))
	validator.Field(s, "password", func(r LoginRequest) string { return r.Password },
		validator.Length(3, 20).
			WithMessage("password length must be between 3 and 20").
			WithTranslation("account.password_length"))
	return s
}()

var AddressSchema = func() *validator.Schema[AddressRequest, validator.NoContext] {
	s := validator.New[AddressRequest, validator.NoContext]("address")
	validator.Field(s, "street", func(r AddressRequest) string { return r.Street }, validator.Length(1, 100))
	validator.Field(s, "city", func(r AddressRequest) string { return r.City }, validator.Length(1, 100))
	validator.Field(s, "country", func(r AddressRequest) string { return r.Country }, validator.Length(1, 100))
	return s
}()

// RegisterUserSchema validates a sign-up against the current DatabaseContext.
// The password confirmation rule runs even when the password fields already
// failed their length rules.
var RegisterUserSchema = func() *validator.Schema[RegisterUserRequest, DatabaseContext] {
	s := validator.New[RegisterUserRequest, DatabaseContext]("register_user")
	validator.Field(s, "username", func(r RegisterUserRequest) string { return r.Username },
		validator.Length(3, 20).WithCode("username"))
	validator.Field(s, "password", func(r RegisterUserRequest) string { return r.Password },
		validator.Length(3, 20).WithCode("password"))
	validator.Field(s, "confirm_password", func(r RegisterUserRequest) string { return r.ConfirmPassword },
		validator.Length(3, 20).WithCode("confirm_password"))
	validator.Field(s, "name", func(r RegisterUserRequest) string { return r.Name },
		validator.Length(3, 100).WithCode("name"))
	validator.Nested(s, "address", func(r RegisterUserRequest) AddressRequest { return r.Address }, AddressSchema)

	s.Record("password", CodePasswordMismatch, passwordsMatch)
	s.RecordWithContext("username", CodeCanRegister, canRegister)
	return s
}()

func passwordsMatch(r RegisterUserRequest) error {
	if r.Password == r.ConfirmPassword {
		return nil
	}
	return validator.NewViolation(CodePasswordMismatch, "password != confirm password").
		WithTranslation("account.password_mismatch", nil)
}

func canRegister(r RegisterUserRequest, db DatabaseContext) error {
	if !db.Full() {
		return nil
	}
	return validator.NewViolation(CodeCanRegister, fmt.Sprintf("cannot register user %s, database is full", r.Username)).
		WithTranslation("account.database_full", map[string]any{"username": r.Username, "total": db.Total, "max_data": db.MaxData})
}
