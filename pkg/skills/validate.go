package skills

import (
	"regexp"

	"github.com/pkg/errors"
)

// MaxNameLength is the maximum number of characters allowed in a skill name.
const MaxNameLength = 64

// namePattern matches hyphen-case names: lowercase alphanumeric words
// separated by single hyphens, with no leading or trailing hyphen.
var namePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var (
	// ErrEmptyName is returned when the skill name is empty.
	ErrEmptyName = errors.New("skill name must not be empty")
	// ErrNameTooLong is returned when the skill name exceeds MaxNameLength.
	ErrNameTooLong = errors.Errorf("skill name exceeds %d characters", MaxNameLength)
	// ErrInvalidName is returned when the skill name is not hyphen-case.
	ErrInvalidName = errors.New("skill name must be hyphen-case: lowercase letters, digits, and hyphens only")
)

// ValidateName checks that a skill name is well-formed before it is used to
// construct any filesystem path.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return errors.Wrapf(ErrNameTooLong, "%q is %d characters", name, len(name))
	}
	if !namePattern.MatchString(name) {
		return errors.Wrapf(ErrInvalidName, "%q", name)
	}
	return nil
}
