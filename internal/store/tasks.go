package store

import "github.com/developerekene/task-tracker-main/internal/models"

// reduceTasks is the task-list reducer. The authenticated flow always
// dispatches SetTasks with a server-confirmed full list; the incremental
// actions serve local-only paths and tests.
func reduceTasks(state []models.Task, a Action) []models.Task {
	switch act := a.(type) {
	case SetTasks:
		if act.Tasks == nil {
			return []models.Task{}
		}
		out := make([]models.Task, len(act.Tasks))
		copy(out, act.Tasks)
		return out
	case AddTask:
		out := make([]models.Task, 0, len(state)+1)
		out = append(out, state...)
		return append(out, act.Task)
	case UpdateTask:
		out := make([]models.Task, len(state))
		for i, t := range state {
			if t.ID == act.ID {
				t = act.Patch.Apply(t)
			}
			out[i] = t
		}
		return out
	case DeleteTask:
		out := make([]models.Task, 0, len(state))
		for _, t := range state {
			if t.ID != act.ID {
				out = append(out, t)
			}
		}
		return out
	}
	return state
}
