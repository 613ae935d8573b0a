package prime

// IsPrime - Returns true if n is a prime number.
// 2 and 3 are prime, 1 (and anything below) and even numbers above 2 are not, everything else is settled by trial
// division with odd factors up to the square root of n.
func IsPrime(n int64) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n <= 1 || n%2 == 0 {
		return false
	}

	for f := int64(3); f*f <= n; f += 2 {
		if n%f == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the smallest prime that is greater than or equal to n, searching odd numbers only.
// An even n is first bumped to the next odd number, so NextPrime(2) is 3.
func NextPrime(n int64) int64 {
	if n%2 == 0 {
		n++
	}

	for !IsPrime(n) {
		n += 2
	}

	return n
}

// Capacity - Returns the table capacity to use for a requested capacity n.
// A prime n is kept as is (which is what keeps a request for 2 at 2), anything else is rounded up with NextPrime.
// n must be positive.
func Capacity(n int64) int64 {
	if IsPrime(n) {
		return n
	}

	return NextPrime(n)
}
