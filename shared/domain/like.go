package domain

import "time"

type Like struct {
	Id        LikeId
	CommentId CommentId
	UserId    UserId
	Date      time.Time
}

// LikeCount is one row of a grouped count. Comments without likes have no row.
type LikeCount struct {
	CommentId CommentId
	Count     int
}
