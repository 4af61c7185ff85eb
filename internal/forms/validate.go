package forms

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	TypeContact    = "contact"
	TypeMembership = "membership"
	TypeLogin      = "login"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ContactReasons are the options offered by the contact form.
var ContactReasons = []any{
	"Book a studio",
	"Start a project",
	"Workspace inquiry",
	"Network access",
	"Partnership inquiry",
	"Schedule a tour",
	"General inquiry",
}

// KnownType reports whether formType is accepted by the relay.
func KnownType(formType string) bool {
	switch formType {
	case TypeContact, TypeMembership, TypeLogin:
		return true
	}
	return false
}

type ContactForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Reason    string `json:"reason"`
}

func (f ContactForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&f.LastName, validation.Length(0, 100)),
		validation.Field(&f.Email, validation.Required, validation.Match(emailPattern).Error("must be a valid email address")),
		validation.Field(&f.Message, validation.Required, validation.Length(1, 5000)),
		validation.Field(&f.Reason, validation.In(ContactReasons...)),
	)
}

type MembershipForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Portfolio string `json:"portfolio"`
	Specialty string `json:"specialty"`
	Message   string `json:"message"`
}

func (f MembershipForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&f.LastName, validation.Length(0, 100)),
		validation.Field(&f.Email, validation.Required, validation.Match(emailPattern).Error("must be a valid email address")),
		validation.Field(&f.Message, validation.Length(0, 5000)),
	)
}

// Validate checks a submission payload for formType. Login submissions are
// relayed unchecked.
func Validate(formType string, data map[string]any) error {
	s := func(key string) string {
		v, _ := data[key].(string)
		return strings.TrimSpace(v)
	}
	switch formType {
	case TypeContact:
		return ContactForm{
			FirstName: s("firstName"),
			LastName:  s("lastName"),
			Email:     s("email"),
			Message:   s("message"),
			Reason:    s("reason"),
		}.Validate()
	case TypeMembership:
		return MembershipForm{
			FirstName: s("firstName"),
			LastName:  s("lastName"),
			Email:     s("email"),
			Portfolio: s("portfolio"),
			Specialty: s("specialty"),
			Message:   s("message"),
		}.Validate()
	}
	return nil
}
