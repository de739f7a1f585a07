package persona

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zarlcorp/zpersona/internal/fake"
)

// ErrNotReproducible is returned when regeneration is requested for a
// persona that was generated without a seed.
var ErrNotReproducible = errors.New("persona has no seed and cannot be regenerated")

// Assembler builds complete personas for one locale. Each Generate call
// constructs its own fake.Provider, so concurrent calls never share PRNG
// state.
type Assembler struct {
	locale string
	now    func() time.Time
}

// NewAssembler creates an assembler for the given locale.
func NewAssembler(locale string) *Assembler {
	return &Assembler{locale: locale, now: time.Now}
}

// Generate builds a fully populated persona. A nil seed means true
// randomness; a non-nil seed is applied exactly once, when the provider is
// constructed, and the same seed with the same id reproduces every
// generated field. An empty id mints a fresh one.
//
// The provider is stateful: each call advances its stream, so the order of
// the calls below is part of the determinism contract. Do not reorder,
// insert, or remove provider calls without accepting that every stored
// seed will map to a different persona.
func (a *Assembler) Generate(seed *uint32, id string) (Persona, error) {
	var p *fake.Provider
	var err error
	if seed != nil {
		p, err = fake.NewSeeded(a.locale, *seed)
	} else {
		p, err = fake.New(a.locale)
	}
	if err != nil {
		return Persona{}, fmt.Errorf("generate persona: %w", err)
	}

	if id == "" {
		id = uuid.NewString()
	}

	// canonical call order: identity, contact, address, professional,
	// online, financial, misc
	sex := p.Sex()
	first := p.FirstName(sex)
	last := p.LastName()
	name := first + " " + last
	username := p.Username(first, last)
	birthdate := p.Birthdate()

	email := p.Email(first, last)
	phone := p.Phone()
	mobile := p.Phone()

	street := p.Street()
	city := p.City()
	state, stateAbbr := p.State()
	zip := p.Zip()
	country, countryCode := p.Country()

	company := p.Company()
	jobTitle := p.JobTitle()
	ssn := p.SSN()

	website := p.URL()
	twitter := p.Username(first, last)
	linkedin := p.Username(first, last)
	facebook := p.Username(first, last)

	cardProvider := p.CardProvider()
	cardNumber := p.CardNumber(cardProvider)
	cardCVV := p.CardCVV(cardProvider)
	cardExpire := p.CardExpiry()

	bloodGroup := p.BloodGroup()
	height := p.IntBetween(150, 200)
	weight := p.IntBetween(50, 120)
	plate := p.LicensePlate()
	maiden := p.LastName()
	color := p.ColorName()

	now := a.now()

	// copy the seed so the stored record does not alias caller memory
	var seedCopy *uint32
	if seed != nil {
		s := *seed
		seedCopy = &s
	}

	// derived fields are computed from the primitives above, never drawn
	// from the provider a second time
	firstTok, lastTok := splitName(name)

	out := Persona{
		ID:        id,
		CreatedAt: now,
		Seed:      seedCopy,

		Name:      name,
		FirstName: firstTok,
		LastName:  lastTok,
		Username:  username,
		Sex:       sex,
		Birthdate: birthdate,
		Age:       ageAt(birthdate, now),

		Email:  email,
		Phone:  phone,
		Mobile: mobile,

		Address: Address{
			Street:      street,
			City:        city,
			State:       state,
			StateAbbr:   stateAbbr,
			Zipcode:     zip,
			Country:     country,
			CountryCode: countryCode,
			FullAddress: fmt.Sprintf("%s, %s, %s %s", street, city, stateAbbr, zip),
		},

		Job:      company + " - " + jobTitle,
		Company:  company,
		JobTitle: jobTitle,
		SSN:      ssn,

		Website: website,
		SocialMedia: SocialMedia{
			Twitter:  "@" + twitter,
			LinkedIn: "linkedin.com/in/" + linkedin,
			Facebook: "facebook.com/" + facebook,
		},

		CreditCard: CreditCard{
			Number:       cardNumber,
			Provider:     cardProvider,
			SecurityCode: cardCVV,
			Expire:       cardExpire,
		},

		BloodGroup:       bloodGroup,
		Height:           fmt.Sprintf("%d cm", height),
		Weight:           fmt.Sprintf("%d kg", weight),
		LicensePlate:     plate,
		MotherMaidenName: maiden,
		FavoriteColor:    color,
	}

	return out, nil
}

// FromSeedString derives a deterministic seed from a human-readable string
// and generates a persona carrying both the seed and the original string.
func (a *Assembler) FromSeedString(s string) (Persona, error) {
	seed := DeriveSeed(s)
	p, err := a.Generate(&seed, "")
	if err != nil {
		return Persona{}, err
	}
	p.SeedString = s
	return p, nil
}

// Regenerate rebuilds a persona from its stored seed under the same id.
// Unseeded personas are rejected with ErrNotReproducible: a missing seed
// marks the record as non-reproducible, and silently resampling would
// return a different person under the same id.
func (a *Assembler) Regenerate(old Persona) (Persona, error) {
	if old.Seed == nil {
		return Persona{}, ErrNotReproducible
	}
	p, err := a.Generate(old.Seed, old.ID)
	if err != nil {
		return Persona{}, err
	}
	p.SeedString = old.SeedString
	return p, nil
}
