package utils

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// BoundedCopy - Returns a copy of a, or ok set to false if a is longer than maxLength.
// The copy never shares its backing array with a.
func BoundedCopy(a []byte, maxLength int) (b []byte, ok bool) {
	if len(a) > maxLength {
		return
	}

	b = make([]byte, len(a))
	_ = copy(b, a)
	ok = true

	return
}

// Wipe - Overwrites every byte of a with zero, including bytes between len and cap
func Wipe(a []byte) {
	a = a[:cap(a)]
	for i := range a {
		a[i] = 0
	}
}

// Digits - Returns the number of decimal digits in n (1 for 0)
func Digits(n int64) (digits int) {
	digits = 1
	for n >= 10 {
		n /= 10
		digits++
	}

	return
}
