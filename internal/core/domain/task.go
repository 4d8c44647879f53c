package domain

import "errors"

var ErrTaskNotFound = errors.New("task not found")
var ErrInvalidTaskID = errors.New("invalid task id")

// Task is a unit of work owned by exactly one user. OwnerID is captured at
// creation and never reassigned; all reads and writes filter on it.
type Task struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	OwnerID     string `json:"owner_id" bson:"owner_id"`
}

// ValidTaskID reports whether s has the shape of a task identity (the 24-char
// hex form of a Mongo ObjectID). Malformed ids are a client error and must be
// rejected before any storage query.
func ValidTaskID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, c := range []byte(s) {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
