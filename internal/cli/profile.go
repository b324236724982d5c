package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/developerekene/task-tracker-main/internal/models"
	"github.com/developerekene/task-tracker-main/internal/store"
)

// Dashboard prints the overview: profile summary, task counts and current
// preferences, all read from the state container.
func (a *App) Dashboard(ctx context.Context) error {
	user := a.store.User()
	settings := a.store.Settings()
	tasks := a.store.Tasks()

	open, completed := 0, 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		} else {
			open++
		}
	}

	printlnFn(fmt.Sprintf("Name:      %s %s (%s)", user.FirstName, user.LastName, user.Initials))
	printlnFn("Email:     " + user.Email)
	if user.Phone != "" {
		printlnFn("Phone:     " + user.Phone)
	}
	if user.City != "" || user.Country != "" {
		printlnFn("Location:  " + strings.TrimSpace(user.City+" "+user.Country))
	}
	printlnFn(fmt.Sprintf("Tasks:     %d open, %d completed", open, completed))
	printlnFn(fmt.Sprintf("Settings:  language=%s theme=%s notifications=%t",
		settings.Language, settings.Theme, settings.Notifications))
	return nil
}

// EditProfile prompts for a handful of profile fields and writes the
// changed ones. Empty answers keep the current values.
func (a *App) EditProfile(ctx context.Context) error {
	var patch models.UserPatch

	prompts := []struct {
		label string
		dst   **string
	}{
		{"First name", &patch.FirstName},
		{"Last name", &patch.LastName},
		{"Phone", &patch.Phone},
		{"City", &patch.City},
		{"Country", &patch.Country},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label+" (empty keeps current)", output)
		if err != nil {
			return err
		}
		if v != "" {
			*p.dst = models.StringPtr(v)
		}
	}

	if err := a.users.UpdatePrimaryInformation(ctx, a.session, patch); err != nil {
		notifyError(err)
		return err
	}

	notifySuccess("profile updated")
	return nil
}

// EditSettings prompts for preferences. Empty answers keep the current
// values; notifications accepts on/off.
func (a *App) EditSettings(ctx context.Context) error {
	var patch models.SettingsPatch

	language, err := getSimpleText(a.reader, "Language (empty keeps current)", output)
	if err != nil {
		return err
	}
	if language != "" {
		patch.Language = models.StringPtr(language)
	}

	theme, err := getSimpleText(a.reader, "Theme light|dark (empty keeps current)", output)
	if err != nil {
		return err
	}
	if theme != "" {
		patch.Theme = models.StringPtr(theme)
	}

	notifications, err := getSimpleText(a.reader, "Notifications on|off (empty keeps current)", output)
	if err != nil {
		return err
	}
	switch strings.ToLower(notifications) {
	case "on":
		patch.Notifications = models.BoolPtr(true)
	case "off":
		patch.Notifications = models.BoolPtr(false)
	}

	if err := a.users.UpdateSettings(ctx, a.session, patch); err != nil {
		notifyError(err)
		return err
	}

	notifySuccess("settings updated")
	return nil
}

// ToggleSidebar flips the sidebar flag and reports the new state.
func (a *App) ToggleSidebar(ctx context.Context) error {
	a.store.Dispatch(store.ToggleSidebar{})
	if a.store.SidebarVisible() {
		notifySuccess("sidebar shown")
	} else {
		notifySuccess("sidebar hidden")
	}
	return nil
}
