package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/zarlcorp/zpersona/internal/persona"
)

func newTestPersona(id string, createdAt time.Time) persona.Persona {
	seed := uint32(1234)
	return persona.Persona{
		ID:        id,
		CreatedAt: createdAt,
		Seed:      &seed,
		Name:      "Jane Doe",
		FirstName: "Jane",
		LastName:  "Doe",
		Username:  "jdoe42",
		Sex:       "F",
		Birthdate: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		Age:       36,
		Email:     "jane.doe@example.com",
		Phone:     "(555) 123-4567",
		Mobile:    "(555) 765-4321",
		Address: persona.Address{
			Street:      "123 Main St",
			City:        "Portland",
			State:       "Oregon",
			StateAbbr:   "OR",
			Zipcode:     "97201",
			Country:     "United States",
			CountryCode: "US",
			FullAddress: "123 Main St, Portland, OR 97201",
		},
		Job:      "Doe Labs - Zoologist",
		Company:  "Doe Labs",
		JobTitle: "Zoologist",
		SSN:      "123-45-6789",
		Website:  "https://swiftotter.example.com",
		SocialMedia: persona.SocialMedia{
			Twitter:  "@jdoe42",
			LinkedIn: "linkedin.com/in/jdoe42",
			Facebook: "facebook.com/jdoe42",
		},
		CreditCard: persona.CreditCard{
			Number:       "4539578763621486",
			Provider:     "Visa",
			SecurityCode: "123",
			Expire:       "04/29",
		},
		BloodGroup:       "O+",
		Height:           "172 cm",
		Weight:           "64 kg",
		LicensePlate:     "KXB-4821",
		MotherMaidenName: "Smith",
		FavoriteColor:    "Teal",
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func TestSaveAndLoad(t *testing.T) {
	s := openTestStore(t)

	want := newTestPersona("p1", time.Now().Truncate(time.Second).UTC())
	id, err := s.Save(want)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id != "p1" {
		t.Errorf("save returned id %q, want p1", id)
	}

	got, err := s.Load("p1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// every field must round-trip
	if got.Seed == nil || *got.Seed != *want.Seed {
		t.Errorf("seed did not round-trip: %v", got.Seed)
	}
	got.Seed, want.Seed = nil, nil
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("created_at: got %v, want %v", got.CreatedAt, want.CreatedAt)
	}
	got.CreatedAt, want.CreatedAt = time.Time{}, time.Time{}
	if !got.Birthdate.Equal(want.Birthdate) {
		t.Errorf("birthdate: got %v, want %v", got.Birthdate, want.Birthdate)
	}
	got.Birthdate, want.Birthdate = time.Time{}, time.Time{}
	if got != want {
		t.Errorf("persona did not round-trip:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestLoadNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Load("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("load: got %v, want ErrNotFound", err)
	}
}

func TestSaveUpserts(t *testing.T) {
	s := openTestStore(t)

	p := newTestPersona("p1", time.Now())
	if _, err := s.Save(p); err != nil {
		t.Fatalf("save: %v", err)
	}

	p.Name = "Janet Doe"
	if _, err := s.Save(p); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := s.Load("p1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != "Janet Doe" {
		t.Errorf("name = %q, want Janet Doe", got.Name)
	}
	if n := len(s.LoadAll()); n != 1 {
		t.Errorf("store has %d records, want 1", n)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Save(newTestPersona("p1", time.Now())); err != nil {
		t.Fatalf("save: %v", err)
	}

	existed, err := s.Delete("p1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !existed {
		t.Error("delete of existing record returned false")
	}

	// second delete is a no-op returning false
	existed, err = s.Delete("p1")
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if existed {
		t.Error("delete of absent record returned true")
	}

	if _, err := s.Load("p1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("load after delete: got %v, want ErrNotFound", err)
	}
}

func TestDeleteAbsentLeavesStoreUnchanged(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Save(newTestPersona("p1", time.Now())); err != nil {
		t.Fatalf("save: %v", err)
	}

	if existed, _ := s.Delete("other"); existed {
		t.Error("delete of absent id returned true")
	}
	if n := len(s.LoadAll()); n != 1 {
		t.Errorf("store has %d records after absent delete, want 1", n)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		p := newTestPersona(id, base.AddDate(0, 0, i))
		if _, err := s.Save(p); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	list := s.List()
	if len(list) != 3 {
		t.Fatalf("list has %d entries, want 3", len(list))
	}
	if list[0].ID != "new" || list[2].ID != "old" {
		t.Errorf("list order: %s, %s, %s; want new, mid, old",
			list[0].ID, list[1].ID, list[2].ID)
	}
	if list[0].Name == "" || list[0].Email == "" {
		t.Error("summary fields not populated")
	}
}

func TestListEmpty(t *testing.T) {
	s := openTestStore(t)
	if list := s.List(); len(list) != 0 {
		t.Errorf("empty store listed %d entries", len(list))
	}
}

func TestCorruptFileFailsSoft(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, storeFile), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	if n := len(s.LoadAll()); n != 0 {
		t.Fatalf("corrupt store returned %d records, want 0", n)
	}

	// a subsequent save overwrites the corrupt file
	if _, err := s.Save(newTestPersona("p1", time.Now())); err != nil {
		t.Fatalf("save over corrupt file: %v", err)
	}
	if _, err := s.Load("p1"); err != nil {
		t.Errorf("load after recovery: %v", err)
	}
}

// failAfterWrite performs real writes but fails the rename, simulating a
// crash between the temp write and the swap.
type failAfterWrite struct {
	fileOps
}

func (f failAfterWrite) Rename(oldpath, newpath string) error {
	return errors.New("injected rename failure")
}

func TestCrashBetweenWriteAndSwap(t *testing.T) {
	dir := t.TempDir()

	healthy, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	original := newTestPersona("p1", time.Now())
	if _, err := healthy.Save(original); err != nil {
		t.Fatalf("save: %v", err)
	}

	broken, err := open(dir, failAfterWrite{fileOps: osFS{}})
	if err != nil {
		t.Fatalf("open broken: %v", err)
	}

	update := original
	update.Name = "Changed Name"
	if _, err := broken.Save(update); err == nil {
		t.Fatal("expected save to fail on injected rename error")
	}

	// the prior state must still be fully readable
	got, err := healthy.Load("p1")
	if err != nil {
		t.Fatalf("load after failed save: %v", err)
	}
	if got.Name != original.Name {
		t.Errorf("name = %q, want %q (pre-failure state)", got.Name, original.Name)
	}
}

type seedFlipper struct{}

func (seedFlipper) Regenerate(p persona.Persona) (persona.Persona, error) {
	if p.Seed == nil {
		return persona.Persona{}, persona.ErrNotReproducible
	}
	p.Name = "Regenerated Person"
	return p, nil
}

func TestRegenerate(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Save(newTestPersona("p1", time.Now())); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Regenerate("p1", seedFlipper{})
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if got.Name != "Regenerated Person" {
		t.Errorf("name = %q, want regenerated value", got.Name)
	}

	// the regenerated record must be persisted
	stored, err := s.Load("p1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored.Name != "Regenerated Person" {
		t.Errorf("stored name = %q, regeneration was not persisted", stored.Name)
	}
}

func TestRegenerateNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Regenerate("missing", seedFlipper{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("regenerate: got %v, want ErrNotFound", err)
	}
}

func TestRegenerateUnseeded(t *testing.T) {
	s := openTestStore(t)

	p := newTestPersona("p1", time.Now())
	p.Seed = nil
	if _, err := s.Save(p); err != nil {
		t.Fatalf("save: %v", err)
	}

	_, err := s.Regenerate("p1", seedFlipper{})
	if !errors.Is(err, persona.ErrNotReproducible) {
		t.Fatalf("regenerate: got %v, want ErrNotReproducible", err)
	}
}

func TestConcurrentSaves(t *testing.T) {
	s := openTestStore(t)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("p%d", i)
			p := newTestPersona(id, time.Now())
			if _, err := s.Save(p); err != nil {
				t.Errorf("save %s: %v", id, err)
			}
		}()
	}
	wg.Wait()

	if n := len(s.LoadAll()); n != 10 {
		t.Errorf("store has %d records after concurrent saves, want 10", n)
	}
}
