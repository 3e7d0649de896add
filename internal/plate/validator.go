package plate

// IsValid reports whether candidate is a plausible plate number:
// exactly seven characters, letters and digits only, containing at
// least one letter and at least one digit.
func IsValid(candidate string) bool {
	if len(candidate) != 7 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range candidate {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
			hasLetter = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}
