package domain

import "time"

type CommentCreationData struct {
	Content  string
	ThreadId ThreadId
	Owner    UserId
}

type AddedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

// CommentRow is a stored comment as listed for a thread, content not yet redacted.
type CommentRow struct {
	Id        CommentId
	Username  Username
	Date      time.Time
	Content   string
	IsDeleted bool
}
