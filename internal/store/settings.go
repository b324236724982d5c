package store

import "github.com/developerekene/task-tracker-main/internal/models"

// reduceSettings replaces the settings slice wholesale. Kept in memory only;
// the remote document is the durable copy.
func reduceSettings(state models.Settings, a Action) models.Settings {
	if act, ok := a.(SetSettings); ok {
		return act.Settings
	}
	return state
}
