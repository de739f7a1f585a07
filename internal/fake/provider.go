// Package fake supplies individually-random realistic field values from
// curated per-locale tables. A Provider is a self-contained value stream:
// seeded providers replay the same sequence of values on every run, so
// callers that fix their call order get reproducible output.
package fake

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Birthdates span a fixed year window so a seeded provider returns the
// same date on every run regardless of when it is asked.
const (
	birthBaseYear = 1950
	birthYearSpan = 55
)

// Card expiries are drawn from a fixed window for the same reason.
const (
	expiryBaseYear = 2026
	expiryYearSpan = 4
)

// CapabilityError reports a locale that cannot serve a generation capability.
type CapabilityError struct {
	Locale     string
	Capability string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("fake: locale %s has no %s", e.Locale, e.Capability)
}

// Provider generates fake field values for one locale. Each Provider owns
// its own PRNG stream; there is no process-global random state to race on.
type Provider struct {
	r *rand.Rand
	d *dataset
}

// New creates a provider with a fresh random stream drawn from crypto/rand.
func New(locale string) (*Provider, error) {
	var b [16]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("fake: seed entropy: %w", err)
	}
	return newProvider(locale, binary.BigEndian.Uint64(b[:8]), binary.BigEndian.Uint64(b[8:]))
}

// NewSeeded creates a provider whose value stream is fully determined by
// seed. The same seed yields the same sequence across processes and runs.
func NewSeeded(locale string, seed uint32) (*Provider, error) {
	return newProvider(locale, uint64(seed), uint64(seed))
}

func newProvider(locale string, s1, s2 uint64) (*Provider, error) {
	d, ok := datasets[locale]
	if !ok {
		return nil, &CapabilityError{Locale: locale, Capability: "dataset"}
	}
	if c := d.missing(); c != "" {
		return nil, &CapabilityError{Locale: locale, Capability: c}
	}
	return &Provider{r: rand.New(rand.NewPCG(s1, s2)), d: d}, nil
}

// Locales returns the locale identifiers with a registered dataset.
func Locales() []string {
	out := make([]string, 0, len(datasets))
	for l := range datasets {
		out = append(out, l)
	}
	return out
}

// Sex returns "M" or "F".
func (p *Provider) Sex() string {
	if p.r.IntN(2) == 0 {
		return "M"
	}
	return "F"
}

// FirstName returns a first name matching the given sex.
func (p *Provider) FirstName(sex string) string {
	if sex == "F" {
		return p.pick(p.d.femaleNames)
	}
	return p.pick(p.d.maleNames)
}

// LastName returns a family name.
func (p *Provider) LastName() string {
	return p.pick(p.d.lastNames)
}

// Username builds a login handle from a name, e.g. "jsmith42" or
// "swiftotter7".
func (p *Provider) Username(first, last string) string {
	first = strings.ToLower(first)
	last = strings.ToLower(last)
	switch p.r.IntN(4) {
	case 0:
		return first[:1] + last + fmt.Sprintf("%02d", p.r.IntN(100))
	case 1:
		return first + last
	case 2:
		return first + "." + last
	default:
		return p.pick(p.d.adjectives) + p.pick(p.d.nouns) + fmt.Sprintf("%d", p.r.IntN(100))
	}
}

// Birthdate returns a date of birth within the fixed 1950-2004 window.
// Days cap at 28 so every month is valid.
func (p *Provider) Birthdate() time.Time {
	year := birthBaseYear + p.r.IntN(birthYearSpan)
	month := time.Month(1 + p.r.IntN(12))
	day := 1 + p.r.IntN(28)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Email builds an address whose local part is derived from the name.
func (p *Provider) Email(first, last string) string {
	first = strings.ToLower(first)
	last = strings.ToLower(last)
	var local string
	switch p.r.IntN(4) {
	case 0:
		local = first + "." + last
	case 1:
		local = first[:1] + last
	case 2:
		local = first + "." + last + fmt.Sprintf("%02d", p.r.IntN(100))
	default:
		local = p.pick(p.d.adjectives) + p.pick(p.d.nouns) + fmt.Sprintf("%04d", p.r.IntN(10000))
	}
	return local + "@" + p.pick(p.d.domains)
}

// Phone returns a fictional US number: (555) XXX-XXXX.
func (p *Provider) Phone() string {
	prefix := 100 + p.r.IntN(900)
	line := p.r.IntN(10000)
	return fmt.Sprintf("(555) %03d-%04d", prefix, line)
}

// Street returns a street address like "1234 Oak Ave".
func (p *Provider) Street() string {
	num := 100 + p.r.IntN(9900)
	return fmt.Sprintf("%d %s %s", num, p.pick(p.d.streetNames), p.pick(p.d.streetSuffixes))
}

// City returns a city name.
func (p *Provider) City() string {
	return p.pick(p.d.cities)
}

// State returns a state name and its abbreviation.
func (p *Provider) State() (name, abbr string) {
	s := p.d.states[p.r.IntN(len(p.d.states))]
	return s.name, s.code
}

// Zip returns a 5-digit postal code.
func (p *Provider) Zip() string {
	return fmt.Sprintf("%05d", p.r.IntN(100000))
}

// Country returns a country name and its ISO 3166-1 alpha-2 code.
func (p *Provider) Country() (name, code string) {
	c := p.d.countries[p.r.IntN(len(p.d.countries))]
	return c.name, c.code
}

// Company composes a company name from family names and a legal form.
func (p *Provider) Company() string {
	switch p.r.IntN(3) {
	case 0:
		return p.LastName() + "-" + p.LastName()
	case 1:
		return fmt.Sprintf("%s, %s and %s", p.LastName(), p.LastName(), p.LastName())
	default:
		return p.LastName() + " " + p.pick(p.d.companyForms)
	}
}

// JobTitle returns an occupation.
func (p *Provider) JobTitle() string {
	return p.pick(p.d.jobTitles)
}

// SSN returns a social-security-like string. Area codes 000, 666 and the
// 900+ range are never issued, so they are skipped here too.
func (p *Provider) SSN() string {
	area := 1 + p.r.IntN(898)
	if area == 666 {
		area = 667
	}
	group := 1 + p.r.IntN(99)
	serial := 1 + p.r.IntN(9999)
	return fmt.Sprintf("%03d-%02d-%04d", area, group, serial)
}

// URL returns a personal-site URL built from the username tables.
func (p *Provider) URL() string {
	host := p.pick(p.d.adjectives) + p.pick(p.d.nouns)
	return "https://" + host + "." + p.pick(p.d.domains)
}

// CardProvider returns a card network name.
func (p *Provider) CardProvider() string {
	return p.d.cardIssuers[p.r.IntN(len(p.d.cardIssuers))].name
}

// CardNumber returns a Luhn-valid number for the given network. Unknown
// networks fall back to the first issuer in the table.
func (p *Provider) CardNumber(provider string) string {
	issuer := p.d.cardIssuers[0]
	for _, ci := range p.d.cardIssuers {
		if ci.name == provider {
			issuer = ci
			break
		}
	}

	prefix := issuer.prefixes[p.r.IntN(len(issuer.prefixes))]
	digits := make([]int, issuer.length)
	for i, c := range prefix {
		digits[i] = int(c - '0')
	}
	for i := len(prefix); i < issuer.length-1; i++ {
		digits[i] = p.r.IntN(10)
	}
	digits[issuer.length-1] = luhnCheckDigit(digits[:issuer.length-1])

	var b strings.Builder
	for _, d := range digits {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// CardCVV returns a security code of the length used by the given network.
func (p *Provider) CardCVV(provider string) string {
	cvvLen := 3
	for _, ci := range p.d.cardIssuers {
		if ci.name == provider {
			cvvLen = ci.cvvLen
			break
		}
	}
	code := make([]byte, cvvLen)
	for i := range code {
		code[i] = byte('0' + p.r.IntN(10))
	}
	return string(code)
}

// CardExpiry returns an MM/YY expiry within the fixed window.
func (p *Provider) CardExpiry() string {
	month := 1 + p.r.IntN(12)
	year := expiryBaseYear + 1 + p.r.IntN(expiryYearSpan)
	return fmt.Sprintf("%02d/%02d", month, year%100)
}

// BloodGroup returns one of the eight ABO/Rh groups.
func (p *Provider) BloodGroup() string {
	return p.pick(p.d.bloodGroups)
}

// ColorName returns a color name.
func (p *Provider) ColorName() string {
	return p.pick(p.d.colors)
}

// LicensePlate returns a plate like "KXB-4821".
func (p *Provider) LicensePlate() string {
	letters := make([]byte, 3)
	for i := range letters {
		letters[i] = byte('A' + p.r.IntN(26))
	}
	return fmt.Sprintf("%s-%04d", letters, p.r.IntN(10000))
}

// IntBetween returns a uniform int in [min, max].
func (p *Provider) IntBetween(min, max int) int {
	return min + p.r.IntN(max-min+1)
}

func (p *Provider) pick(s []string) string {
	return s[p.r.IntN(len(s))]
}

// luhnCheckDigit computes the trailing digit that makes the sequence pass
// the Luhn check.
func luhnCheckDigit(digits []int) int {
	sum := 0
	double := true
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}
