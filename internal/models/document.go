package models

import (
	"fmt"
	"time"
)

// Document is the per-user record held by the remote document store, one per
// account, addressed by the opaque account id.
type Document struct {
	User UserDocument `json:"user" firestore:"user"`
}

type UserDocument struct {
	PrimaryInformation UserState           `json:"primaryInformation" firestore:"primaryInformation"`
	Location           Location            `json:"location" firestore:"location"`
	Task               TaskSection         `json:"task" firestore:"task"`
	Notification       NotificationSection `json:"notification" firestore:"notification"`
	Settings           Settings            `json:"settings" firestore:"settings"`
}

// TaskSection wraps the embedded task array. All of a user's tasks live in
// this single ordered list, not as independently addressable records.
type TaskSection struct {
	Tasks []Task `json:"tasks" firestore:"tasks"`
}

type NotificationSection struct {
	Notifications []Notification `json:"notifications" firestore:"notifications"`
}

// Notification is an embedded in-app notification entry. The list is written
// empty at registration.
type Notification struct {
	ID          string `json:"id" firestore:"id"`
	Message     string `json:"message" firestore:"message"`
	DateCreated string `json:"dateCreated" firestore:"dateCreated"`
}

// Location carries the registration timestamp block.
type Location struct {
	CurrentDateTime DateTimeParts `json:"currentdateTime" firestore:"currentdateTime"`
}

// DateTimeParts is the exploded wall-clock stamp written at registration.
type DateTimeParts struct {
	Year              int    `json:"year" firestore:"year"`
	Month             int    `json:"month" firestore:"month"`
	Date              int    `json:"date" firestore:"date"`
	Time              string `json:"time" firestore:"time"`
	FormattedDateTime string `json:"formattedDateTime" firestore:"formattedDateTime"`
}

// CurrentDateTime splits now into the parts stored under user.location.
func CurrentDateTime(now time.Time) DateTimeParts {
	date := now.Format("2006-01-02")
	clock := now.Format("15:04:05")
	return DateTimeParts{
		Year:              now.Year(),
		Month:             int(now.Month()),
		Date:              now.Day(),
		Time:              clock,
		FormattedDateTime: fmt.Sprintf("%s %s", date, clock),
	}
}
