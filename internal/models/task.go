package models

import "time"

// Task is one entry of the embedded task list. Dates are RFC 3339 strings,
// matching what the document store holds; the id is a client-generated
// random token. Ids are intended to be unique within a user's list, but
// nothing enforces that.
type Task struct {
	ID           string `json:"id" firestore:"id"`
	Title        string `json:"title" firestore:"title"`
	Desc         string `json:"desc" firestore:"desc"`
	Completed    bool   `json:"completed" firestore:"completed"`
	DateCreated  string `json:"dateCreated" firestore:"dateCreated"`
	DateModified string `json:"dateModified" firestore:"dateModified"`
	DateDeleted  string `json:"dateDeleted,omitempty" firestore:"dateDeleted,omitempty"`
}

// TaskPatch is a partial task update; nil fields are left untouched.
type TaskPatch struct {
	Title        *string
	Desc         *string
	Completed    *bool
	DateModified *string
}

// Apply merges the patch into t.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Desc != nil {
		t.Desc = *p.Desc
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.DateModified != nil {
		t.DateModified = *p.DateModified
	}
	return t
}

// Timestamp formats t the way task dates are stored remotely.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
