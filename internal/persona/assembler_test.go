package persona

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDeriveSeed(t *testing.T) {
	tests := []struct {
		input string
		want  uint32
	}{
		// fixed vectors: md5(input) mod 2^32
		{"alice-2024", 2257979276},
		{"bob", 2550802904},
		{"", 3975692926},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DeriveSeed(tt.input); got != tt.want {
				t.Errorf("DeriveSeed(%q) = %d, want %d", tt.input, got, tt.want)
			}
			// repeated calls must agree
			if again := DeriveSeed(tt.input); again != tt.want {
				t.Errorf("DeriveSeed(%q) not stable: %d", tt.input, again)
			}
		})
	}
}

// equalExceptCreatedAt compares every field that generation controls.
func equalExceptCreatedAt(a, b Persona) bool {
	a.CreatedAt = time.Time{}
	b.CreatedAt = time.Time{}
	a.Age = 0
	b.Age = 0
	if a.Seed != nil && b.Seed != nil {
		if *a.Seed != *b.Seed {
			return false
		}
		a.Seed, b.Seed = nil, nil
	}
	return a == b
}

func TestGenerateDeterministic(t *testing.T) {
	asm := NewAssembler("en_US")
	seed := uint32(424242)

	a, err := asm.Generate(&seed, "p1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := asm.Generate(&seed, "p1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !equalExceptCreatedAt(a, b) {
		t.Errorf("seeded generation not deterministic:\n%+v\n%+v", a, b)
	}
	if a.ID != "p1" || b.ID != "p1" {
		t.Errorf("ids = %q, %q, want p1", a.ID, b.ID)
	}
}

func TestGenerateUnseededVaries(t *testing.T) {
	asm := NewAssembler("en_US")

	a, err := asm.Generate(nil, "p1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := asm.Generate(nil, "p1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if a.Seed != nil || b.Seed != nil {
		t.Error("unseeded personas must carry no seed")
	}
	if a.Name == b.Name && a.Email == b.Email && a.SSN == b.SSN {
		t.Errorf("unseeded generations identical: %q / %q", a.Name, a.Email)
	}
}

func TestGenerateMintsID(t *testing.T) {
	asm := NewAssembler("en_US")

	a, _ := asm.Generate(nil, "")
	b, _ := asm.Generate(nil, "")
	if a.ID == "" || b.ID == "" {
		t.Fatal("expected minted ids")
	}
	if a.ID == b.ID {
		t.Errorf("minted ids collide: %q", a.ID)
	}
}

func TestGenerateDerivedFields(t *testing.T) {
	asm := NewAssembler("en_US")
	seed := DeriveSeed("derived-fields")

	p, err := asm.Generate(&seed, "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tests := []struct {
		name  string
		check func() bool
	}{
		{"first name is first token", func() bool {
			return p.FirstName == strings.Fields(p.Name)[0]
		}},
		{"last name is last token", func() bool {
			f := strings.Fields(p.Name)
			return p.LastName == f[len(f)-1]
		}},
		{"job composed from company and title", func() bool {
			return p.Job == p.Company+" - "+p.JobTitle
		}},
		{"full address contains street", func() bool {
			return strings.Contains(p.Address.FullAddress, p.Address.Street)
		}},
		{"full address contains state abbr", func() bool {
			return strings.Contains(p.Address.FullAddress, p.Address.StateAbbr)
		}},
		{"twitter handle prefixed", func() bool {
			return strings.HasPrefix(p.SocialMedia.Twitter, "@")
		}},
		{"linkedin path prefixed", func() bool {
			return strings.HasPrefix(p.SocialMedia.LinkedIn, "linkedin.com/in/")
		}},
		{"height unit", func() bool { return strings.HasSuffix(p.Height, " cm") }},
		{"weight unit", func() bool { return strings.HasSuffix(p.Weight, " kg") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check() {
				t.Errorf("check failed for persona: %+v", p)
			}
		})
	}
}

func TestGenerateAge(t *testing.T) {
	asm := NewAssembler("en_US")
	asm.now = func() time.Time {
		return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	}

	seed := uint32(7)
	p, err := asm.Generate(&seed, "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := ageAt(p.Birthdate, time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC))
	if p.Age != want {
		t.Errorf("age = %d, want %d", p.Age, want)
	}
	if p.Age < 21 || p.Age > 77 {
		t.Errorf("age %d outside plausible window for the fixed birth years", p.Age)
	}
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday passed", time.Date(1990, 3, 1, 0, 0, 0, 0, time.UTC), 36},
		{"birthday today", time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), 36},
		{"birthday upcoming", time.Date(1990, 9, 1, 0, 0, 0, 0, time.UTC), 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ageAt(tt.dob, now); got != tt.want {
				t.Errorf("ageAt = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGenerateUnknownLocale(t *testing.T) {
	asm := NewAssembler("zz_ZZ")
	_, err := asm.Generate(nil, "")
	if err == nil {
		t.Fatal("expected error for unknown locale")
	}
}

func TestFromSeedString(t *testing.T) {
	asm := NewAssembler("en_US")

	a, err := asm.FromSeedString("alice-2024")
	if err != nil {
		t.Fatalf("from seed string: %v", err)
	}
	b, err := asm.FromSeedString("alice-2024")
	if err != nil {
		t.Fatalf("from seed string: %v", err)
	}

	if a.Seed == nil || *a.Seed != DeriveSeed("alice-2024") {
		t.Errorf("seed = %v, want %d", a.Seed, DeriveSeed("alice-2024"))
	}
	if a.SeedString != "alice-2024" {
		t.Errorf("seed string = %q", a.SeedString)
	}
	if a.Name != b.Name || a.Email != b.Email || a.CreditCard != b.CreditCard {
		t.Error("same seed string produced different personas")
	}
}

func TestRegenerate(t *testing.T) {
	asm := NewAssembler("en_US")

	orig, err := asm.FromSeedString("alice-2024")
	if err != nil {
		t.Fatalf("from seed string: %v", err)
	}

	re, err := asm.Regenerate(orig)
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}

	if re.ID != orig.ID {
		t.Errorf("id changed: %q -> %q", orig.ID, re.ID)
	}
	if re.SeedString != "alice-2024" {
		t.Errorf("seed string lost: %q", re.SeedString)
	}
	if !equalExceptCreatedAt(orig, re) {
		t.Errorf("regeneration diverged:\n%+v\n%+v", orig, re)
	}
}

func TestRegenerateUnseeded(t *testing.T) {
	asm := NewAssembler("en_US")

	p, err := asm.Generate(nil, "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = asm.Regenerate(p)
	if !errors.Is(err, ErrNotReproducible) {
		t.Fatalf("err = %v, want ErrNotReproducible", err)
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		full  string
		first string
		last  string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"Mary Anne van der Berg", "Mary", "Berg"},
		{"Cher", "Cher", "Cher"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.full, func(t *testing.T) {
			first, last := splitName(tt.full)
			if first != tt.first || last != tt.last {
				t.Errorf("splitName(%q) = %q, %q; want %q, %q",
					tt.full, first, last, tt.first, tt.last)
			}
		})
	}
}
