package service

import "errors"

// Sentinel errors shared by the resource services. Handlers translate them
// into the response envelope with the matching HTTP status.
var (
	ErrNotFound  = errors.New("record not found")
	ErrForbidden = errors.New("not authorized for this record")
)
