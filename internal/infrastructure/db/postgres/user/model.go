package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID           uuid.UUID
		Name         string
		Email        string
		PasswordHash string
		Token        string

		Created   time.Time
		Modified  time.Time
		LastLogin time.Time

		IsActive bool
	}
	Phone struct {
		Number      string
		CityCode    string
		CountryCode string
	}
	Phones []Phone
)
