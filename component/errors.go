package component

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownState    = errors.New("component: unknown animation state")
	ErrMissingSubgroup = errors.New("component: missing animation subgroup")
)

// UnknownStateError reports a SetState call for a state the table does not hold.
type UnknownStateError struct {
	State AnimState
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("component: unknown animation state %q", e.State)
}

func (e *UnknownStateError) Is(target error) bool {
	return target == ErrUnknownState
}

// MissingSubgroupError reports a required state absent from a loaded table.
type MissingSubgroupError struct {
	State  AnimState
	Source string
}

func (e *MissingSubgroupError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("component: missing animation subgroup %q", e.State)
	}
	return fmt.Sprintf("component: missing animation subgroup %q in %s", e.State, e.Source)
}

func (e *MissingSubgroupError) Is(target error) bool {
	return target == ErrMissingSubgroup
}
