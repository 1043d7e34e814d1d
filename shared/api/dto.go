package api

import (
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/sanitize"
)

// Request DTOs shared by the handlers

type CreateThreadRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type CreateReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

func (r *CreateThreadRequest) Sanitize() {
	r.Title = sanitize.Text(r.Title)
	r.Body = sanitize.Text(r.Body)
}

func (r *CreateCommentRequest) Sanitize() {
	r.Content = sanitize.Text(r.Content)
}

func (r *CreateReplyRequest) Sanitize() {
	r.Content = sanitize.Text(r.Content)
}

// Response envelope

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

type Response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Success(data any) Response {
	return Response{Status: StatusSuccess, Data: data}
}

// Response payloads

type AddedThreadData struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type ThreadData struct {
	Thread domain.MaterializedThread `json:"thread"`
}

type AddedCommentData struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddedReplyData struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}

type LikeData struct {
	Liked bool `json:"liked"`
}
