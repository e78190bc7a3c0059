package jobly

// LoginData is validated by LoginModule and posted to auth/token.
type LoginData struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupData is validated by SignupModule and posted to auth/register.
type SignupData struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ProfileData is the profile payload patched to users/:username.
// Username is the request key and never part of the body.
type ProfileData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Input names shared by the views, the state machines and HandleChange.
const (
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
)
