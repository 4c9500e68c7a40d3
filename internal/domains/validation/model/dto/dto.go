package dto

type ValidatePhoneRequest struct {
	PhoneNumber string `json:"phone_number"`
}

type ValidateCityRequest struct {
	City string `json:"city"`
}

type ValidateDateRequest struct {
	Date string `json:"date"`
}

// ValidateNameRequest keeps the name as a raw JSON value so that non-string
// names can be reported as invalid instead of failing to decode.
type ValidateNameRequest struct {
	Name any `json:"name"`
}

type ValidityResponse struct {
	IsValid bool `json:"is_valid"`
}

type NameValidityResponse struct {
	IsValid bool   `json:"is_valid"`
	Name    string `json:"name"`
}
