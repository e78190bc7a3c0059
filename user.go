package jobly

import (
	"context"
	"errors"
	"strings"

	"github.com/tinywasm/fmt"
)

var (
	ErrTimeout        = fmt.Err("request", "timeout")            // EN: Request Timeout              / ES: Solicitud Tiempo Agotado
	ErrUnavailable    = fmt.Err("service", "unavailable")        // EN: Service Unavailable          / ES: Servicio No Disponible
	ErrReadOnlyField  = fmt.Err("field", "read", "only")         // EN: Field Read Only              / ES: Campo Solo Lectura
	ErrUnknownField   = fmt.Err("field", "unknown")              // EN: Field Unknown                / ES: Campo Desconocido
	ErrSubmitInFlight = fmt.Err("request", "in", "progress")     // EN: Request In Progress          / ES: Solicitud En Progreso
	ErrInvalidToken   = fmt.Err("token", "invalid")              // EN: Token Invalid                / ES: Token Inválido
	ErrNoSession      = fmt.Err("session", "not", "found")       // EN: Session Not Found            / ES: Sesión No Encontrada
	ErrBadResponse    = fmt.Err("response", "invalid")           // EN: Response Invalid             / ES: Respuesta Inválida
)

// User is the record the Jobly API returns for an account.
type User struct {
	Username     string `json:"username"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	IsAdmin      bool   `json:"isAdmin"`
	Applications []int  `json:"applications,omitempty"`
}

// ErrorList carries the messages the API rejected a request with, in order.
type ErrorList []string

func (e ErrorList) Error() string {
	return strings.Join(e, "; ")
}

// Messages flattens err into the list a form displays.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var list ErrorList
	if errors.As(err, &list) {
		return append([]string(nil), list...)
	}
	return []string{err.Error()}
}

// ProfileSaver is the profile-update operation of the API boundary.
type ProfileSaver interface {
	SaveProfile(ctx context.Context, username string, data ProfileData) (User, error)
}

// Authenticator exchanges credentials for an API token.
type Authenticator interface {
	Login(ctx context.Context, data LoginData) (string, error)
	Signup(ctx context.Context, data SignupData) (string, error)
}

// CurrentUserAPI is what a Session needs from the API client.
type CurrentUserAPI interface {
	SetToken(token string)
	GetCurrentUser(ctx context.Context, username string) (User, error)
}
