package store

import "github.com/developerekene/task-tracker-main/internal/models"

// reduceUser is the profile reducer: shallow merge on SetUser, hard reset
// to defaults on ResetUser.
func reduceUser(state models.UserState, a Action) models.UserState {
	switch act := a.(type) {
	case SetUser:
		return act.Patch.Apply(state)
	case ResetUser:
		return models.DefaultUserState()
	}
	return state
}
