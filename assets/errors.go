package assets

import (
	"errors"
	"fmt"
)

var ErrMissingSequenceMember = errors.New("assets: missing sequence member")

// MissingSequenceMemberError reports a gap in a subgroup's frame numbering, such as
// walk_left_0.png and walk_left_2.png without walk_left_1.png.
type MissingSequenceMemberError struct {
	Dir      string
	Subgroup string
	Index    int
}

func (e *MissingSequenceMemberError) Error() string {
	return fmt.Sprintf("assets: %s: %s is missing frame %d", e.Dir, e.Subgroup, e.Index)
}

func (e *MissingSequenceMemberError) Is(target error) bool {
	return target == ErrMissingSequenceMember
}
