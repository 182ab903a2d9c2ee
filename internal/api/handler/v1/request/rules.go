package request

import (
	"errors"
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/sit-project/sit-api/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var (
	phonePattern    = regexp.MustCompile(`^[+]*[(]*[0-9]{1,4}[)]*[-\s./0-9]*$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	statusPattern   = regexp.MustCompile(`^[\p{L}\s]+$`)

	// Length and charset checked in one pass.
	cedulaPattern = regexp2.MustCompile(`^(?=.{9,20}$)[A-Z0-9\-.]+$`, regexp2.None)

	errInvalidPhone  = errors.New("must be a valid phone number")
	errInvalidDate   = errors.New("must be a date in YYYY-MM-DD format")
	errInvalidTime   = errors.New("must be a time in HH:MM format")
	errInvalidCedula = errors.New("must be 9 to 20 characters of A-Z, 0-9, '-' or '.'")
)

var phoneRule = validation.Match(phonePattern).Error(errInvalidPhone.Error())

func latitude() []validation.Rule {
	return []validation.Rule{validation.Min(-90.0), validation.Max(90.0)}
}

func longitude() []validation.Rule {
	return []validation.Rule{validation.Min(-180.0), validation.Max(180.0)}
}

// matchRegexp2 validates strings against a pattern the standard library
// cannot express.
func matchRegexp2(re *regexp2.Regexp, err error) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		ok, matchErr := re.MatchString(s)
		if matchErr != nil || !ok {
			return err
		}
		return nil
	})
}

var (
	dateRule = validation.Date(dateLayout).Error(errInvalidDate.Error())
	timeRule = validation.Date(timeLayout).Error(errInvalidTime.Error())
)

// notBefore fails when the value is a date earlier than start.
func notBefore(start string) validation.Rule {
	return validation.By(func(value interface{}) error {
		end, _ := value.(string)
		if end == "" || start == "" {
			return nil
		}
		s, err1 := time.Parse(dateLayout, start)
		e, err2 := time.Parse(dateLayout, end)
		if err1 != nil || err2 != nil {
			return nil
		}
		if e.Before(s) {
			return errors.New("must not be before start_date")
		}
		return nil
	})
}

type ContactInput struct {
	ContactType  string `json:"contact_type"`
	ContactValue string `json:"contact_value"`
}

func (c ContactInput) Validate() error {
	valueRules := []validation.Rule{validation.Required, validation.Length(1, 255)}
	switch c.ContactType {
	case domain.ContactEmail:
		valueRules = append(valueRules, is.Email)
	case domain.ContactPhone:
		valueRules = append(valueRules, phoneRule)
	}

	return validation.ValidateStruct(&c,
		validation.Field(&c.ContactType, validation.Required, validation.In(domain.ContactPhone, domain.ContactEmail)),
		validation.Field(&c.ContactValue, valueRules...),
	)
}

func contactsToDomain(in []ContactInput) []domain.Contact {
	if in == nil {
		return nil
	}
	out := make([]domain.Contact, 0, len(in))
	for _, c := range in {
		out = append(out, domain.Contact{
			ContactType:  c.ContactType,
			ContactValue: c.ContactValue,
		})
	}
	return out
}
