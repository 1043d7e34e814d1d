package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title ThreadTitle
	Body  string
	Owner UserId
}

type AddedThread struct {
	Id    ThreadId    `json:"id"`
	Title ThreadTitle `json:"title"`
	Owner UserId      `json:"owner"`
}

// ThreadDetail is a thread row joined with its author's username.
type ThreadDetail struct {
	Id       ThreadId
	Title    ThreadTitle
	Body     string
	Username Username
	Date     time.Time
}
