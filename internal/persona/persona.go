// Package persona defines the synthetic identity record and the assembler
// that builds one from fake field values.
package persona

import (
	"strings"
	"time"
)

// Address holds the postal fields plus the precomposed one-line form.
type Address struct {
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	StateAbbr   string `json:"state_abbr"`
	Zipcode     string `json:"zipcode"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	FullAddress string `json:"full_address"`
}

// SocialMedia holds handles derived from generated usernames.
type SocialMedia struct {
	Twitter  string `json:"twitter"`
	LinkedIn string `json:"linkedin"`
	Facebook string `json:"facebook"`
}

// CreditCard holds the financial fields. The number is Luhn-valid and
// consistent with the provider.
type CreditCard struct {
	Number       string `json:"number"`
	Provider     string `json:"provider"`
	SecurityCode string `json:"security_code"`
	Expire       string `json:"expire"`
}

// Persona is one complete synthetic identity record. Seed is nil for
// personas generated with true randomness; such records carry no
// reproducibility guarantee and are never back-filled with a seed.
type Persona struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Seed      *uint32   `json:"seed,omitempty"`
	SeedString string   `json:"seed_string,omitempty"`

	Name      string    `json:"name"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username"`
	Sex       string    `json:"sex"`
	Birthdate time.Time `json:"birthdate"`
	Age       int       `json:"age"`

	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Mobile string `json:"mobile"`

	Address Address `json:"address"`

	Job      string `json:"job"`
	Company  string `json:"company"`
	JobTitle string `json:"job_title"`
	SSN      string `json:"ssn"`

	Website     string      `json:"website"`
	SocialMedia SocialMedia `json:"social_media"`

	CreditCard CreditCard `json:"credit_card"`

	BloodGroup       string `json:"blood_group"`
	Height           string `json:"height"`
	Weight           string `json:"weight"`
	LicensePlate     string `json:"license_plate"`
	MotherMaidenName string `json:"mother_maiden_name"`
	FavoriteColor    string `json:"favorite_color"`
}

// Summary is the listing projection of a persona.
type Summary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	SeedString string    `json:"seed_string,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Summary returns the listing projection of p.
func (p Persona) Summary() Summary {
	return Summary{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		SeedString: p.SeedString,
		CreatedAt:  p.CreatedAt,
	}
}

// splitName takes the first and last whitespace-separated tokens. Lossy
// for multi-part names; that matches the stored first/last contract.
func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], parts[len(parts)-1]
}

// ageAt computes full years elapsed between birthdate and now.
func ageAt(birthdate, now time.Time) int {
	years := now.Year() - birthdate.Year()
	anniversary := birthdate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
