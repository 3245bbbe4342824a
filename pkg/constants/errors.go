package constants

import "errors"

// Errors
var (
	ErrNoTargets        = errors.New("no targets specified for DELETE")
	ErrRelationFilter   = errors.New("cannot combine a manual filter with a relation delete")
	ErrNoRelationTarget = errors.New("relation has neither an edge record id nor a relation table")
	ErrRelationEndpoint = errors.New("relation endpoints must both be set")
)
