package crt

// QuadraticProbing - Open addressing with probe sequence (h + i*i) mod capacity and tombstones for removed records
const QuadraticProbing int = 1

// SeparateChaining - Every bucket holds a singly linked list of the records hashing to it
const SeparateChaining int = 2

// Name - Returns a human readable name of a collision resolution technique
func Name(crtType int) string {
	switch crtType {
	case QuadraticProbing:
		return "QuadraticProbing"
	case SeparateChaining:
		return "SeparateChaining"
	default:
		return "Unknown"
	}
}
