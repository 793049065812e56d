// Package intercept holds the decorators that wrap the user and order
// services. Composition order is fixed: validation wraps logging, and
// logging wraps the service itself, so a rejected email never reaches
// the entry log or the store. Request-level success and error logging
// live one layer further out, in internal/handlers.
package intercept

import (
	"context"
	"regexp"

	"github.com/orderdesk/apiserver/internal/services"
	"github.com/orderdesk/apiserver/types"
	"github.com/rs/zerolog"
)

// emailPattern is the historical format check: a local part, an @, a
// domain, and a two to four character TLD. fgr@dfd@.com does not match.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*\.\w{2,4}$`)

// ValidEmail reports whether the string passes the format check.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatingUsers pre-checks email arguments before the wrapped call
// runs. Only the email-keyed lookup takes an email argument directly;
// the other methods pass through untouched.
type ValidatingUsers struct {
	next services.Users
	log  zerolog.Logger
}

func NewValidatingUsers(next services.Users, log zerolog.Logger) *ValidatingUsers {
	return &ValidatingUsers{next: next, log: log}
}

func (v *ValidatingUsers) GetByEmail(ctx context.Context, email string) (types.UserDTO, error) {
	v.log.Info().Str("email", email).Msg("validating email")
	if !ValidEmail(email) {
		return types.UserDTO{}, &services.InvalidEmailError{Email: email}
	}
	return v.next.GetByEmail(ctx, email)
}

func (v *ValidatingUsers) List(ctx context.Context) ([]types.UserDTO, error) {
	return v.next.List(ctx)
}

func (v *ValidatingUsers) GetByID(ctx context.Context, id int) (types.UserDTO, error) {
	return v.next.GetByID(ctx, id)
}

func (v *ValidatingUsers) Create(ctx context.Context, dto types.UserDTO) (types.UserDTO, error) {
	return v.next.Create(ctx, dto)
}

func (v *ValidatingUsers) Update(ctx context.Context, id int, dto types.UserDTO) (types.UserDTO, error) {
	return v.next.Update(ctx, id, dto)
}

func (v *ValidatingUsers) Delete(ctx context.Context, id int) (string, error) {
	return v.next.Delete(ctx, id)
}
