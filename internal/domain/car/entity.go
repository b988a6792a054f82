package car

// Car is an immutable catalog entry. The catalog stores odometer readings in
// miles; everything above the repository layer sees kilometers only.
type Car struct {
	ID    int32
	Brand string
	Model string
	Year  int32
	Price float64
	Kms   float64
}

const kmPerMile = 1.609344

func MilesToKms(miles float64) float64 {
	return miles * kmPerMile
}
