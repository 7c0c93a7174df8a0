package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	Phone struct {
		Number      string `json:"number"`
		CityCode    string `json:"citycode"`
		CountryCode string `json:"countrycode"`
	}
	Phones []Phone
	User   struct {
		ID        uuid.UUID `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Created   time.Time `json:"created"`
		Modified  time.Time `json:"modified"`
		LastLogin time.Time `json:"last_login"`
		IsActive  bool      `json:"is_active"`
		Token     string    `json:"token"`
		Phones    Phones    `json:"phones"`
	}
)
