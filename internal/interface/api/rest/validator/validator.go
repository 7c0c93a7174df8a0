package validator

import (
	"net/mail"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"user-registration-api/internal/interface/api/rest/dto/auth"
	"user-registration-api/internal/interface/api/rest/dto/user"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
	maxNameLen     = 64
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateRegistration(r user.Request) map[string]string {
	errs := make(map[string]string)

	// Normalize. Email stays case-sensitive: it is the exact-match login key.
	email := strings.TrimSpace(r.Email)
	name := strings.TrimSpace(r.Name)

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// name (required + length)
	if name == "" {
		errs["name"] = "name is required"
	} else if utf8.RuneCountInString(name) > maxNameLen {
		errs["name"] = "name length must be at most " + strconv.Itoa(maxNameLen) + " characters"
	}

	// password (required + length + character classes)
	if msg := checkPassword(r.Password); msg != "" {
		errs["password"] = msg
	}

	// phones (at least one, every field non-empty)
	if len(r.Phones) == 0 {
		errs["phones"] = "at least one phone is required"
	}
	for idx, p := range r.Phones {
		key := "phones[" + strconv.Itoa(idx) + "]"
		if strings.TrimSpace(p.Number) == "" {
			errs[key+".number"] = "number is required"
		}
		if strings.TrimSpace(p.CityCode) == "" {
			errs[key+".citycode"] = "citycode is required"
		}
		if strings.TrimSpace(p.CountryCode) == "" {
			errs[key+".countrycode"] = "countrycode is required"
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func checkPassword(password string) string {
	if strings.TrimSpace(password) == "" {
		return "password is required"
	}
	if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		return "password length must be 8-72 characters"
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return "password must contain upper and lower case letters and a digit"
	}

	return ""
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.TrimSpace(r.Email)

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// password (required + length). The password itself is never trimmed.
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(r.Password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
