package account

// LoginRequest is a login form submission.
type LoginRequest struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

type AddressRequest struct {
	Street  string `json:"street" yaml:"street"`
	City    string `json:"city" yaml:"city"`
	Country string `json:"country" yaml:"country"`
}

// RegisterUserRequest is a sign-up form submission.
type RegisterUserRequest struct {
	Username        string         `json:"username" yaml:"username"`
	Password        string         `json:"password" yaml:"password"`
	ConfirmPassword string         `json:"confirm_password" yaml:"confirm_password"`
	Name            string         `json:"name" yaml:"name"`
	Address         AddressRequest `json:"address" yaml:"address"`
}
