package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

// Store contracts consumed by the use cases. Every method takes the request context;
// store failures come back wrapped and are never retried here.

type UserStorage interface {
	UsernameExists(ctx context.Context, username domain.Username) (bool, error)
	AddUser(ctx context.Context, data domain.UserCreationData) (domain.AddedUser, error)
	// UserByUsername fails with NotFound when no such user exists.
	UserByUsername(ctx context.Context, username domain.Username) (domain.User, error)
}

type ThreadStorage interface {
	ThreadExists(ctx context.Context, id domain.ThreadId) (bool, error)
	AddThread(ctx context.Context, data domain.ThreadCreationData) (domain.AddedThread, error)
	GetThread(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
}

type CommentStorage interface {
	CommentExists(ctx context.Context, id domain.CommentId) (bool, error)
	CommentOwnedBy(ctx context.Context, id domain.CommentId, userId domain.UserId) (bool, error)
	AddComment(ctx context.Context, data domain.CommentCreationData) (domain.AddedComment, error)
	// CommentsByThread returns the thread's comments ordered by creation time.
	CommentsByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error)
	SoftDeleteComment(ctx context.Context, id domain.CommentId) error
}

type ReplyStorage interface {
	ReplyExists(ctx context.Context, id domain.ReplyId) (bool, error)
	ReplyOwnedBy(ctx context.Context, id domain.ReplyId, userId domain.UserId) (bool, error)
	AddReply(ctx context.Context, data domain.ReplyCreationData) (domain.AddedReply, error)
	// RepliesByCommentIds is a single batch read, ordered by creation time.
	RepliesByCommentIds(ctx context.Context, ids []domain.CommentId) ([]domain.ReplyRow, error)
	SoftDeleteReply(ctx context.Context, id domain.ReplyId) error
}

type LikeStorage interface {
	LikeExists(ctx context.Context, commentId domain.CommentId, userId domain.UserId) (bool, error)
	AddLike(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error
	RemoveLike(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error
	// LikeCountsByCommentIds omits comments that have no likes.
	LikeCountsByCommentIds(ctx context.Context, ids []domain.CommentId) ([]domain.LikeCount, error)
}

type Storage interface {
	UserStorage
	ThreadStorage
	CommentStorage
	ReplyStorage
	LikeStorage
}

// UnimplementedStorage satisfies Storage with methods that all fail with
// ErrNotImplemented. Embed it to back only part of the contract.
type UnimplementedStorage struct{}

var _ Storage = UnimplementedStorage{}

func (UnimplementedStorage) UsernameExists(context.Context, domain.Username) (bool, error) {
	return false, internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) AddUser(context.Context, domain.UserCreationData) (domain.AddedUser, error) {
	return domain.AddedUser{}, internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) UserByUsername(context.Context, domain.Username) (domain.User, error) {
	return domain.User{}, internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) ThreadExists(context.Context, domain.ThreadId) (bool, error) {
	return false, internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) AddThread(context.Context, domain.ThreadCreationData) (domain.AddedThread, error) {
	return domain.AddedThread{}, internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) GetThread(context.Context, domain.ThreadId) (domain.ThreadDetail, error) {
	return domain.ThreadDetail{}, internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) CommentExists(context.Context, domain.CommentId) (bool, error) {
	return false, internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) CommentOwnedBy(context.Context, domain.CommentId, domain.UserId) (bool, error) {
	return false, internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) AddComment(context.Context, domain.CommentCreationData) (domain.AddedComment, error) {
	return domain.AddedComment{}, internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) CommentsByThread(context.Context, domain.ThreadId) ([]domain.CommentRow, error) {
	return nil, internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) SoftDeleteComment(context.Context, domain.CommentId) error {
	return internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) ReplyExists(context.Context, domain.ReplyId) (bool, error) {
	return false, internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) ReplyOwnedBy(context.Context, domain.ReplyId, domain.UserId) (bool, error) {
	return false, internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) AddReply(context.Context, domain.ReplyCreationData) (domain.AddedReply, error) {
	return domain.AddedReply{}, internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) RepliesByCommentIds(context.Context, []domain.CommentId) ([]domain.ReplyRow, error) {
	return nil, internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) SoftDeleteReply(context.Context, domain.ReplyId) error {
	return internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) LikeExists(context.Context, domain.CommentId, domain.UserId) (bool, error) {
	return false, internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) AddLike(context.Context, domain.CommentId, domain.UserId) error {
	return internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) RemoveLike(context.Context, domain.CommentId, domain.UserId) error {
	return internal_errors.ErrNotImplemented
}

func (UnimplementedStorage) LikeCountsByCommentIds(context.Context, []domain.CommentId) ([]domain.LikeCount, error) {
	return nil, internal_errors.ErrNotImplemented
}
