package animals_test

import (
	"testing"

	"animal-registry/internal/domain/animals"

	"github.com/google/go-cmp/cmp"
	"github.com/m-mizutani/gt"
)

func TestBreeds(t *testing.T) {
	want := []animals.Breed{animals.BreedCat, animals.BreedCow, animals.BreedDog, animals.BreedLama}
	if diff := cmp.Diff(want, animals.Breeds()); diff != "" {
		t.Fatalf("breeds mismatch:\n%s", diff)
	}

	// la copia no altera el conjunto
	b := animals.Breeds()
	b[0] = "HORSE"
	gt.Value(t, animals.Breeds()[0]).Equal(animals.BreedCat)
}

func TestParseBreed(t *testing.T) {
	b, ok := animals.ParseBreed(" lama ")
	gt.Bool(t, ok).True()
	gt.Value(t, b).Equal(animals.BreedLama)

	_, ok = animals.ParseBreed("horse")
	gt.Bool(t, ok).False()

	_, ok = animals.ParseBreed("")
	gt.Bool(t, ok).False()
}
