package domain

import (
	"time"

	"github.com/itchan-dev/forum/shared/validation"
)

// Content shown in place of soft deleted items.
const (
	DeletedCommentContent = "**komentar telah dihapus**"
	DeletedReplyContent   = "**balasan telah dihapus**"
)

type MaterializedReply struct {
	Id       ReplyId   `json:"id" validate:"required"`
	Content  string    `json:"content" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	Username Username  `json:"username" validate:"required"`
}

type MaterializedComment struct {
	Id        CommentId           `json:"id" validate:"required"`
	Username  Username            `json:"username" validate:"required"`
	Date      time.Time           `json:"date" validate:"required"`
	Content   string              `json:"content" validate:"required"`
	LikeCount int                 `json:"likeCount" validate:"min=0"`
	Replies   []MaterializedReply `json:"replies"`
}

type MaterializedThread struct {
	Id       ThreadId              `json:"id" validate:"required"`
	Title    ThreadTitle           `json:"title" validate:"required"`
	Body     string                `json:"body" validate:"required"`
	Date     time.Time             `json:"date" validate:"required"`
	Username Username              `json:"username" validate:"required"`
	Comments []MaterializedComment `json:"comments"`
}

func NewMaterializedReply(row ReplyRow) (MaterializedReply, error) {
	r := MaterializedReply{
		Id:       row.Id,
		Content:  row.Content,
		Date:     row.Date,
		Username: row.Username,
	}
	if row.IsDeleted {
		r.Content = DeletedReplyContent
	}
	if err := validation.Struct("MATERIALIZED_REPLY", r); err != nil {
		return MaterializedReply{}, err
	}
	return r, nil
}

// NewMaterializedComment keeps replies in the given order.
func NewMaterializedComment(row CommentRow, replies []MaterializedReply, likeCount int) (MaterializedComment, error) {
	if replies == nil {
		replies = []MaterializedReply{}
	}
	c := MaterializedComment{
		Id:        row.Id,
		Username:  row.Username,
		Date:      row.Date,
		Content:   row.Content,
		LikeCount: likeCount,
		Replies:   replies,
	}
	if row.IsDeleted {
		c.Content = DeletedCommentContent
	}
	if err := validation.Struct("MATERIALIZED_COMMENT", c); err != nil {
		return MaterializedComment{}, err
	}
	return c, nil
}

func NewMaterializedThread(detail ThreadDetail, comments []MaterializedComment) (MaterializedThread, error) {
	if comments == nil {
		comments = []MaterializedComment{}
	}
	t := MaterializedThread{
		Id:       detail.Id,
		Title:    detail.Title,
		Body:     detail.Body,
		Date:     detail.Date,
		Username: detail.Username,
		Comments: comments,
	}
	if err := validation.Struct("MATERIALIZED_THREAD", t); err != nil {
		return MaterializedThread{}, err
	}
	return t, nil
}
