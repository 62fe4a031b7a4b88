// Package storage reads Windsurf's global storage file. The file is owned
// by the editor and is strictly read-only input; it is re-read on every
// invocation with no caching in between.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

type LoadErrorCode string

const (
	LoadErrorStateMissing LoadErrorCode = "STATE_MISSING"
	LoadErrorInvalidJSON  LoadErrorCode = "STATE_INVALID_JSON"
	LoadErrorReadFailed   LoadErrorCode = "STATE_READ_FAILED"
)

type LoadError struct {
	Code LoadErrorCode
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsMissing reports whether err is a LoadError for an absent storage file.
// Absence is not a failure: the editor simply has no recorded state yet.
func IsMissing(err error) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Code == LoadErrorStateMissing
}

// Load reads and parses the storage file at path. The document is returned
// as a generic JSON tree; no shape beyond "valid JSON" is guaranteed and
// callers must navigate it defensively.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Code: LoadErrorStateMissing, Path: path, Err: err}
		}
		return nil, &LoadError{Code: LoadErrorReadFailed, Path: path, Err: err}
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Code: LoadErrorInvalidJSON, Path: path, Err: err}
	}
	return raw, nil
}
