package domain

import "time"

type ReplyCreationData struct {
	Content   string
	CommentId CommentId
	Owner     UserId
}

type AddedReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

type ReplyRow struct {
	Id        ReplyId
	CommentId CommentId
	Username  Username
	Date      time.Time
	Content   string
	IsDeleted bool
}
