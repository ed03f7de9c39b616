// Package errors holds the pipeline's sentinel errors. Per-record validation
// findings are plain strings in the report, not errors; these sentinels cover
// the conditions that abort a run or signal an absent row.
package errors

import "errors"

var (
	ErrNoSources       = errors.New("no input sources configured")
	ErrNoRecords       = errors.New("no records extracted")
	ErrBrokerNotFound  = errors.New("broker not found")
	ErrMissingDatabase = errors.New("database url not configured")
)
