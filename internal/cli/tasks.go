package cli

import (
	"context"
	"fmt"

	"github.com/developerekene/task-tracker-main/internal/models"
)

// ListTasks refreshes the task list from the backend and prints it.
func (a *App) ListTasks(ctx context.Context) error {
	tasks, err := a.tasks.List(ctx, a.session)
	if err != nil {
		notifyError(err)
		return err
	}

	if len(tasks) == 0 {
		printlnFn("No tasks yet; use 'add'")
		return nil
	}
	for _, task := range tasks {
		printlnFn(formatTask(task))
	}
	return nil
}

// AddTask prompts for a title and description and creates the task.
func (a *App) AddTask(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", output)
	if err != nil {
		return err
	}
	desc, err := getSimpleText(a.reader, "Description", output)
	if err != nil {
		return err
	}

	task, err := a.tasks.Create(ctx, a.session, title, desc)
	if err != nil {
		notifyError(err)
		return err
	}

	notifySuccess("task created: " + task.ID)
	return nil
}

// EditTask prompts for a new title and description for the given task.
// Empty answers keep the current values.
func (a *App) EditTask(ctx context.Context, id string) error {
	title, err := getSimpleText(a.reader, "New title (empty keeps current)", output)
	if err != nil {
		return err
	}
	desc, err := getSimpleText(a.reader, "New description (empty keeps current)", output)
	if err != nil {
		return err
	}

	var patch models.TaskPatch
	if title != "" {
		patch.Title = models.StringPtr(title)
	}
	if desc != "" {
		patch.Desc = models.StringPtr(desc)
	}

	if err := a.tasks.Update(ctx, a.session, id, patch); err != nil {
		notifyError(err)
		return err
	}

	notifySuccess("task updated")
	return nil
}

// CompleteTask marks the given task as completed.
func (a *App) CompleteTask(ctx context.Context, id string) error {
	patch := models.TaskPatch{Completed: models.BoolPtr(true)}
	if err := a.tasks.Update(ctx, a.session, id, patch); err != nil {
		notifyError(err)
		return err
	}

	notifySuccess("task completed")
	return nil
}

// RemoveTask deletes the given task.
func (a *App) RemoveTask(ctx context.Context, id string) error {
	if err := a.tasks.Delete(ctx, a.session, id); err != nil {
		notifyError(err)
		return err
	}

	notifySuccess("task deleted")
	return nil
}

func formatTask(t models.Task) string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	line := fmt.Sprintf("[%s] %s  %s", mark, t.ID, t.Title)
	if t.Desc != "" {
		line += "  - " + t.Desc
	}
	return line
}
