package export

import (
	"fmt"
	"time"

	"github.com/zarlcorp/zpersona/internal/persona"
)

// Field is one flattened key/value pair.
type Field struct {
	Key   string
	Value string
}

// Flatten lists every persona field in a fixed order, joining nested keys
// to their parent with an underscore (address.street -> address_street).
// Optional fields (seed, seed_string) are present with empty values so the
// CSV column set is identical for every record.
func Flatten(p persona.Persona) []Field {
	seed := ""
	if p.Seed != nil {
		seed = fmt.Sprintf("%d", *p.Seed)
	}

	return []Field{
		{"id", p.ID},
		{"created_at", p.CreatedAt.Format(time.RFC3339)},
		{"seed", seed},
		{"seed_string", p.SeedString},
		{"name", p.Name},
		{"first_name", p.FirstName},
		{"last_name", p.LastName},
		{"username", p.Username},
		{"sex", p.Sex},
		{"birthdate", p.Birthdate.Format("2006-01-02")},
		{"age", fmt.Sprintf("%d", p.Age)},
		{"email", p.Email},
		{"phone", p.Phone},
		{"mobile", p.Mobile},
		{"address_street", p.Address.Street},
		{"address_city", p.Address.City},
		{"address_state", p.Address.State},
		{"address_state_abbr", p.Address.StateAbbr},
		{"address_zipcode", p.Address.Zipcode},
		{"address_country", p.Address.Country},
		{"address_country_code", p.Address.CountryCode},
		{"address_full_address", p.Address.FullAddress},
		{"job", p.Job},
		{"company", p.Company},
		{"job_title", p.JobTitle},
		{"ssn", p.SSN},
		{"website", p.Website},
		{"social_media_twitter", p.SocialMedia.Twitter},
		{"social_media_linkedin", p.SocialMedia.LinkedIn},
		{"social_media_facebook", p.SocialMedia.Facebook},
		{"credit_card_number", p.CreditCard.Number},
		{"credit_card_provider", p.CreditCard.Provider},
		{"credit_card_security_code", p.CreditCard.SecurityCode},
		{"credit_card_expire", p.CreditCard.Expire},
		{"blood_group", p.BloodGroup},
		{"height", p.Height},
		{"weight", p.Weight},
		{"license_plate", p.LicensePlate},
		{"mother_maiden_name", p.MotherMaidenName},
		{"favorite_color", p.FavoriteColor},
	}
}
