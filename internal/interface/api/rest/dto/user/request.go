package user

type (
	PhoneRequest struct {
		Number      string `json:"number"`
		CityCode    string `json:"citycode"`
		CountryCode string `json:"countrycode"`
	}
	Request struct {
		Name     string         `json:"name"`
		Email    string         `json:"email"`
		Password string         `json:"password"`
		Phones   []PhoneRequest `json:"phones"`
	}
)
