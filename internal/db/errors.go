package db

import "errors"

// ErrNotFound is returned by repositories when a requested document does not
// exist. VacationRepository.GetVacation is the exception: it returns (nil, nil)
// for an absent vacation so the access resolver can distinguish "not found"
// from transport failure.
var ErrNotFound = errors.New("not found")
