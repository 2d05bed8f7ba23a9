package models

import "github.com/lib/pq"

// Profile is the one-to-one extension of User. Worker and employer profiles
// share the table; CompanyName/CompanyDescription stay empty for workers.
type Profile struct {
	BaseModel
	UserID             uint           `gorm:"uniqueIndex;not null" json:"userId"`
	Bio                string         `json:"bio"`
	Skills             pq.StringArray `gorm:"type:text[]" json:"skills" swaggerignore:"true"`
	Location           string         `json:"location"`
	ContactInfo        string         `json:"contactInfo"`
	CompanyName        string         `json:"companyName,omitempty"`
	CompanyDescription string         `json:"companyDescription,omitempty"`
}
