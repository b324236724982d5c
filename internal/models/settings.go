package models

// Settings holds the user preferences stored under user.settings.
type Settings struct {
	Language      string `json:"language" firestore:"language"`
	Theme         string `json:"theme" firestore:"theme"`
	Notifications bool   `json:"notifications" firestore:"notifications"`
}

// DefaultSettings are written with the initial document at registration.
func DefaultSettings() Settings {
	return Settings{Language: "en", Theme: "dark", Notifications: true}
}

// SettingsPatch is a partial settings update; nil fields keep prior values.
type SettingsPatch struct {
	Language      *string
	Theme         *string
	Notifications *bool
}

func (p SettingsPatch) Apply(s Settings) Settings {
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	return s
}

// Fields returns the remote field paths touched by the patch, relative to
// user.settings.
func (p SettingsPatch) Fields() map[string]any {
	m := make(map[string]any)
	if p.Language != nil {
		m["language"] = *p.Language
	}
	if p.Theme != nil {
		m["theme"] = *p.Theme
	}
	if p.Notifications != nil {
		m["notifications"] = *p.Notifications
	}
	return m
}
