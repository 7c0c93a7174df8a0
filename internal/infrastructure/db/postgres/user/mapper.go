package user

import (
	domain "user-registration-api/internal/domain/user"
)

func fromDBModel(model *User, phones Phones) *domain.User {
	var u = &domain.User{
		ID:           model.ID,
		Name:         model.Name,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Token:        model.Token,

		CreatedAt:   model.Created,
		ModifiedAt:  model.Modified,
		LastLoginAt: model.LastLogin,

		IsActive: model.IsActive,
		Phones:   fromDBPhones(phones),
	}

	return u
}

func fromDBPhones(models Phones) domain.Phones {
	ps := make(domain.Phones, len(models))
	for idx, p := range models {
		ps[idx] = domain.Phone{
			Number:      p.Number,
			CityCode:    p.CityCode,
			CountryCode: p.CountryCode,
		}
	}

	return ps
}
