package submission

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound marks submission lookups that do not exist.
var ErrNotFound = errors.New("submission not found")

// FieldErrors reports structural validation failures per offending field.
// A submit that produces any aborts before persistence.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid input: " + strings.Join(fields, ", ")
}
