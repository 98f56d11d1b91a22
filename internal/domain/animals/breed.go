package animals

import "strings"

// Breed define el conjunto cerrado de razas soportadas.
// @Enum CAT, COW, DOG, LAMA
type Breed string

const (
	BreedCat  Breed = "CAT"
	BreedCow  Breed = "COW"
	BreedDog  Breed = "DOG"
	BreedLama Breed = "LAMA"
)

// orden de declaración; lo usa el selector de razas
var allBreeds = []Breed{BreedCat, BreedCow, BreedDog, BreedLama}

// Breeds devuelve una copia, así nadie puede alterar el conjunto.
func Breeds() []Breed {
	out := make([]Breed, len(allBreeds))
	copy(out, allBreeds)
	return out
}

func (b Breed) Valid() bool {
	for _, v := range allBreeds {
		if b == v {
			return true
		}
	}
	return false
}

func (b Breed) String() string {
	return string(b)
}

// ParseBreed acepta el nombre sin distinguir mayúsculas ("dog", "Dog", "DOG").
func ParseBreed(s string) (Breed, bool) {
	b := Breed(strings.ToUpper(strings.TrimSpace(s)))
	if !b.Valid() {
		return "", false
	}
	return b, true
}
