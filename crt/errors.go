package crt

import "fmt"

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probing algorithm was exhausted without finding a slot
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// IndexOutOfRange - Custom error to inform that an index was outside the bounds of a dynamic array
type IndexOutOfRange struct {
	Index  int64
	Length int64
}

// Error - Used to notify that an index was out of range
func (I IndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range for length %d", I.Index, I.Length)
}

// Is - Makes errors.Is match any IndexOutOfRange regardless of index and length
func (I IndexOutOfRange) Is(target error) bool {
	_, ok := target.(IndexOutOfRange)
	return ok
}

// EmptyInput - Custom error to inform that an operation requiring at least one element got none
type EmptyInput struct {
	msg string
}

// Error - Used to notify that input was empty
func (E EmptyInput) Error() string {
	if E.msg == "" {
		return "input must contain at least one element"
	}
	return E.msg
}
