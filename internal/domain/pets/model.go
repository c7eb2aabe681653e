package pets

import "time"

// Category define las especies soportadas.
// @Enum Dog, Cat
type Category string

const (
	CategoryDog Category = "Dog"
	CategoryCat Category = "Cat"
)

// breeds es la lista cerrada por categoría que ofrece el formulario.
var breeds = map[Category][]string{
	CategoryDog: {"Labrador Retriever", "German Shepherd", "Golden Retriever", "Bulldog", "Beagle"},
	CategoryCat: {"Persian", "Maine Coon", "Siamese", "British Shorthair", "Bengal"},
}

func (c Category) Valid() bool {
	_, ok := breeds[c]
	return ok
}

// Breeds devuelve una copia de la lista de razas de la categoría.
func Breeds(c Category) []string {
	return append([]string(nil), breeds[c]...)
}

func validBreed(c Category, breed string) bool {
	for _, b := range breeds[c] {
		if b == breed {
			return true
		}
	}
	return false
}

// Pet es una mascota propia del cliente (no confundir con el catálogo de adopción).
type Pet struct {
	ID          string
	OwnerUserID string

	Category Category
	Breed    string
	Name     string
	Age      int

	CreatedAt time.Time
	UpdatedAt time.Time
}
