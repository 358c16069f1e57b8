package employee

import "regexp"

// Field format rules. Each predicate takes one already-trimmed string and
// reports whether it is acceptable; malformed input yields false, never an
// error.
var (
	idPattern      = regexp.MustCompile(`^E\d{8}$`)
	namePattern    = regexp.MustCompile(`^[A-Za-z ]{1,20}$`)
	salaryPattern  = regexp.MustCompile(`^\d+$`)
	contactPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// MaxContactLength is the maximum accepted length for a contact email.
const MaxContactLength = 20

// ValidID reports whether s is an employee ID: "E" followed by exactly
// eight digits.
func ValidID(s string) bool {
	return idPattern.MatchString(s)
}

// ValidName reports whether s is 1-20 characters of letters and spaces.
func ValidName(s string) bool {
	return namePattern.MatchString(s)
}

// ValidDepartment applies the same rule as ValidName.
func ValidDepartment(s string) bool {
	return namePattern.MatchString(s)
}

// ValidSalary reports whether s is a non-empty string of decimal digits.
// Signs, decimal points and surrounding whitespace are rejected; the value
// is widened to two-decimal precision at construction time.
func ValidSalary(s string) bool {
	return salaryPattern.MatchString(s)
}

// ValidContact reports whether s is a syntactically valid email address of
// at most MaxContactLength characters.
func ValidContact(s string) bool {
	return len(s) <= MaxContactLength && contactPattern.MatchString(s)
}
