package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/developerekene/task-tracker-main/internal/backend"
	"github.com/developerekene/task-tracker-main/internal/common"
	"github.com/developerekene/task-tracker-main/internal/logging"
	"github.com/developerekene/task-tracker-main/internal/models"
	"github.com/developerekene/task-tracker-main/internal/store"
)

// taskListField is the dotted path of the embedded task array inside the
// user document.
const taskListField = "user.task.tasks"

// TaskService manipulates the embedded task list of the signed-in user's
// document. List, Update and Delete follow a read-modify-write cycle on
// the whole array; concurrent writers can therefore overwrite each other,
// last write wins.
type TaskService interface {
	List(ctx context.Context, s *backend.Session) ([]models.Task, error)
	Create(ctx context.Context, s *backend.Session, title, desc string) (models.Task, error)
	Update(ctx context.Context, s *backend.Session, taskID string, patch models.TaskPatch) error
	Delete(ctx context.Context, s *backend.Session, taskID string) error
}

type taskService struct {
	client     backend.Client
	dispatcher store.Dispatcher
	log        logging.Logger
	now        func() time.Time
	newID      func() string
}

func NewTaskService(client backend.Client, dispatcher store.Dispatcher, log logging.Logger) TaskService {
	return &taskService{
		client:     client,
		dispatcher: dispatcher,
		log:        log,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// List re-reads the remote document and replaces the local task list with
// whatever it holds.
func (t *taskService) List(ctx context.Context, s *backend.Session) ([]models.Task, error) {
	if s == nil {
		return nil, common.ErrNotSignedIn
	}
	doc, err := t.client.GetDocument(ctx, s.UserID)
	if err != nil {
		return nil, t.mapDocErr(err)
	}
	t.dispatcher.Dispatch(store.SetTasks{Tasks: doc.User.Task.Tasks})
	return doc.User.Task.Tasks, nil
}

// Create appends a new task through the store's atomic array-union, then
// re-reads the document so the local list reflects the server's ordering.
func (t *taskService) Create(ctx context.Context, s *backend.Session, title, desc string) (models.Task, error) {
	if s == nil {
		return models.Task{}, common.ErrNotSignedIn
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, errors.New("task title must not be empty")
	}

	now := models.Timestamp(t.now())
	task := models.Task{
		ID:           t.newID(),
		Title:        title,
		Desc:         strings.TrimSpace(desc),
		Completed:    false,
		DateCreated:  now,
		DateModified: now,
	}

	if err := t.client.AppendTask(ctx, s.UserID, task); err != nil {
		return models.Task{}, t.mapDocErr(err)
	}

	doc, err := t.client.GetDocument(ctx, s.UserID)
	if err != nil {
		return models.Task{}, t.mapDocErr(err)
	}
	t.dispatcher.Dispatch(store.SetTasks{Tasks: doc.User.Task.Tasks})

	t.log.Info(ctx, "task created", "taskId", task.ID)
	return task, nil
}

// Update reads the current list, merges the patch into the matching entry
// and writes the whole array back. The modification date is refreshed even
// when the patch carries one.
func (t *taskService) Update(ctx context.Context, s *backend.Session, taskID string, patch models.TaskPatch) error {
	if s == nil {
		return common.ErrNotSignedIn
	}
	doc, err := t.client.GetDocument(ctx, s.UserID)
	if err != nil {
		return t.mapDocErr(err)
	}

	tasks := doc.User.Task.Tasks
	found := false
	for i, task := range tasks {
		if task.ID != taskID {
			continue
		}
		merged := patch.Apply(task)
		merged.DateModified = models.Timestamp(t.now())
		tasks[i] = merged
		found = true
		break
	}
	if !found {
		return fmt.Errorf("task %s not found", taskID)
	}

	if err := t.client.UpdateDocumentFields(ctx, s.UserID, map[string]any{
		taskListField: tasks,
	}); err != nil {
		return t.mapDocErr(err)
	}

	t.dispatcher.Dispatch(store.SetTasks{Tasks: tasks})
	return nil
}

// Delete removes the task from the list and writes the shortened array
// back. Deleting an id that is not present is a no-op that still rewrites
// the array.
func (t *taskService) Delete(ctx context.Context, s *backend.Session, taskID string) error {
	if s == nil {
		return common.ErrNotSignedIn
	}
	doc, err := t.client.GetDocument(ctx, s.UserID)
	if err != nil {
		return t.mapDocErr(err)
	}

	tasks := doc.User.Task.Tasks
	remaining := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID != taskID {
			remaining = append(remaining, task)
		}
	}

	if err := t.client.UpdateDocumentFields(ctx, s.UserID, map[string]any{
		taskListField: remaining,
	}); err != nil {
		return t.mapDocErr(err)
	}

	t.dispatcher.Dispatch(store.SetTasks{Tasks: remaining})
	t.log.Info(ctx, "task deleted", "taskId", taskID)
	return nil
}

func (t *taskService) mapDocErr(err error) error {
	if errors.Is(err, backend.ErrDocumentNotFound) {
		return common.ErrUserInfoMissing
	}
	return err
}
