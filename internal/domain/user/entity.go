package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID  = uuid.UUID
	Phone struct {
		Number      string
		CityCode    string
		CountryCode string
	}
	Phones []Phone
	User   struct {
		ID           UUID
		Name         string
		Email        string
		PasswordHash string
		Token        string

		CreatedAt   time.Time
		ModifiedAt  time.Time
		LastLoginAt time.Time

		IsActive bool
		Phones   Phones
	}
)
