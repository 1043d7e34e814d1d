package domain

type (
	UserId   = string
	Username = string
	Password = string

	ThreadId    = string
	ThreadTitle = string

	CommentId = string
	ReplyId   = string
	LikeId    = string
)

// id prefixes, one per kind
const (
	UserIdPrefix    = "user-"
	ThreadIdPrefix  = "thread-"
	CommentIdPrefix = "comment-"
	ReplyIdPrefix   = "reply-"
	LikeIdPrefix    = "like-"
)
