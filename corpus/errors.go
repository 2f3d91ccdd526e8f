package corpus

import (
	"errors"
	"fmt"
)

// ErrCorpusIntegrity is returned when the loaded artifacts contradict each other.
var ErrCorpusIntegrity = errors.New("corpus integrity")

// IntegrityError describes a single corpus defect found at load time.
type IntegrityError struct {
	Field  string
	Term   string
	SongID int
	Reason string
}

func (e *IntegrityError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("corpus integrity: %s[%q] references song %d: %s", e.Field, e.Term, e.SongID, e.Reason)
	}
	return fmt.Sprintf("corpus integrity: %s", e.Reason)
}

func (e *IntegrityError) Is(target error) bool {
	return target == ErrCorpusIntegrity
}
