package store

// reduceSidebar flips or forces the transient sidebar flag. Never persisted.
func reduceSidebar(state bool, a Action) bool {
	switch a.(type) {
	case ToggleSidebar:
		return !state
	case ShowSidebar:
		return true
	case HideSidebar:
		return false
	}
	return state
}
