package domain

import (
	"errors"
	"fmt"
)

// ErrIncompleteResponse marks a scoring request that does not answer the
// full questionnaire. The request is rejected and nothing is computed.
var ErrIncompleteResponse = errors.New("incomplete questionnaire response")

// ErrQuestionnaireInvalid marks a questionnaire definition that cannot be
// served (empty, inconsistent ids, or weights outside the trait space).
var ErrQuestionnaireInvalid = errors.New("invalid questionnaire definition")

// CatalogLoadError reports a malformed catalog record. One bad record
// fails the entire load: a partially valid catalog is worse than none.
type CatalogLoadError struct {
	Record int // 1-based data record number, 0 for header/source level
	Reason string
}

func (e *CatalogLoadError) Error() string {
	if e.Record == 0 {
		return fmt.Sprintf("catalog load failed: %s", e.Reason)
	}
	return fmt.Sprintf("catalog load failed at record %d: %s", e.Record, e.Reason)
}
