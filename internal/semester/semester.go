package semester

import (
	"net/http"
	"regexp"

	"github.com/campuskit/scheduling-backend/internal/pkg/apperror"
)

var ErrInvalid = apperror.New(http.StatusBadRequest, "invalid_semester", "semester must look like 2025-I or 2025-II")

// Semester is an academic term code, e.g. "2025-I" or "2025-II".
type Semester string

var pattern = regexp.MustCompile(`^\d{4}-(I|II)$`)

// Parse validates a term code.
func Parse(s string) (Semester, error) {
	if !pattern.MatchString(s) {
		return "", ErrInvalid
	}
	return Semester(s), nil
}

func (s Semester) String() string {
	return string(s)
}
