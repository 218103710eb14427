package interfaces

import "errors"

// ErrConditionFailed is returned by repositories when a conditional write loses
// to a concurrent change (status moved, row already paid, request resolved).
var ErrConditionFailed = errors.New("conditional write failed")
