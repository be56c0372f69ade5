package domain

import "time"

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
)

type Notification struct {
	OwnerID   string
	Kind      NotificationKind
	Title     string
	Message   string
	CreatedAt time.Time
}
