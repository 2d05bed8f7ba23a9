package dto

type UpsertProfileRequest struct {
	Bio                string   `json:"bio" validate:"max=2000"`
	Skills             []string `json:"skills" validate:"max=50"`
	Location           string   `json:"location" validate:"max=200"`
	ContactInfo        string   `json:"contactInfo" validate:"max=200"`
	CompanyName        string   `json:"companyName" validate:"max=200"`
	CompanyDescription string   `json:"companyDescription" validate:"max=2000"`
}
