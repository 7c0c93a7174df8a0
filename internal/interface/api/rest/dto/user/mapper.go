package user

import (
	"strings"

	"user-registration-api/internal/domain/user"
)

// ToResponseUser shapes a domain user for the wire. The password digest
// never leaves the service; the token field mirrors the latest issuance.
func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:        uDomain.ID,
		Name:      uDomain.Name,
		Email:     uDomain.Email,
		Created:   uDomain.CreatedAt,
		Modified:  uDomain.ModifiedAt,
		LastLogin: uDomain.LastLoginAt,
		IsActive:  uDomain.IsActive,
		Token:     uDomain.Token,
		Phones:    toResponsePhones(uDomain.Phones),
	}

	return u
}

func toResponsePhones(psDomain user.Phones) Phones {
	ps := make(Phones, len(psDomain))
	for idx, p := range psDomain {
		ps[idx] = Phone{
			Number:      p.Number,
			CityCode:    p.CityCode,
			CountryCode: p.CountryCode,
		}
	}

	return ps
}

func ToDomainUser(uRequest Request) user.User {
	phones := make(user.Phones, len(uRequest.Phones))
	for idx, p := range uRequest.Phones {
		phones[idx] = user.Phone{
			Number:      p.Number,
			CityCode:    p.CityCode,
			CountryCode: p.CountryCode,
		}
	}

	var u = user.User{
		Name:   strings.TrimSpace(uRequest.Name),
		Email:  strings.TrimSpace(uRequest.Email),
		Phones: phones,
	}

	return u
}
