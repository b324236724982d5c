package store

import "github.com/developerekene/task-tracker-main/internal/models"

// Action marks the types the store accepts through Dispatch.
type Action interface{ isAction() }

// Profile slice actions.

// SetUser shallow-merges the patch into the profile slice.
type SetUser struct{ Patch models.UserPatch }

// ResetUser restores the fixed all-empty defaults and clears the mirrored
// user key.
type ResetUser struct{}

// Task slice actions.

// SetTasks replaces the whole list with the payload, exactly.
type SetTasks struct{ Tasks []models.Task }

// AddTask appends one task.
type AddTask struct{ Task models.Task }

// UpdateTask merges the patch into the task with the given id; unknown ids
// leave the list unchanged.
type UpdateTask struct {
	ID    string
	Patch models.TaskPatch
}

// DeleteTask removes the task with the given id; deleting an absent id is
// a no-op, so the action is idempotent.
type DeleteTask struct{ ID string }

// Settings slice action.
type SetSettings struct{ Settings models.Settings }

// Sidebar slice actions.
type (
	ToggleSidebar struct{}
	ShowSidebar   struct{}
	HideSidebar   struct{}
)

func (SetUser) isAction()       {}
func (ResetUser) isAction()     {}
func (SetTasks) isAction()      {}
func (AddTask) isAction()       {}
func (UpdateTask) isAction()    {}
func (DeleteTask) isAction()    {}
func (SetSettings) isAction()   {}
func (ToggleSidebar) isAction() {}
func (ShowSidebar) isAction()   {}
func (HideSidebar) isAction()   {}
