package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

// --- Mocks ---

// mockStorage records every call it receives. Methods without a func field fall
// through to UnimplementedStorage and fail with ErrNotImplemented.
type mockStorage struct {
	UnimplementedStorage

	threadExistsFunc        func(id domain.ThreadId) (bool, error)
	addThreadFunc           func(data domain.ThreadCreationData) (domain.AddedThread, error)
	getThreadFunc           func(id domain.ThreadId) (domain.ThreadDetail, error)
	commentExistsFunc       func(id domain.CommentId) (bool, error)
	commentOwnedByFunc      func(id domain.CommentId, userId domain.UserId) (bool, error)
	addCommentFunc          func(data domain.CommentCreationData) (domain.AddedComment, error)
	commentsByThreadFunc    func(threadId domain.ThreadId) ([]domain.CommentRow, error)
	softDeleteCommentFunc   func(id domain.CommentId) error
	replyExistsFunc         func(id domain.ReplyId) (bool, error)
	replyOwnedByFunc        func(id domain.ReplyId, userId domain.UserId) (bool, error)
	addReplyFunc            func(data domain.ReplyCreationData) (domain.AddedReply, error)
	repliesByCommentIdsFunc func(ids []domain.CommentId) ([]domain.ReplyRow, error)
	softDeleteReplyFunc     func(id domain.ReplyId) error
	likeExistsFunc          func(commentId domain.CommentId, userId domain.UserId) (bool, error)
	addLikeFunc             func(commentId domain.CommentId, userId domain.UserId) error
	removeLikeFunc          func(commentId domain.CommentId, userId domain.UserId) error
	likeCountsFunc          func(ids []domain.CommentId) ([]domain.LikeCount, error)
	usernameExistsFunc      func(username domain.Username) (bool, error)
	addUserFunc             func(data domain.UserCreationData) (domain.AddedUser, error)
	userByUsernameFunc      func(username domain.Username) (domain.User, error)

	mu    sync.Mutex
	calls []string
}

func (m *mockStorage) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockStorage) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *mockStorage) ThreadExists(ctx context.Context, id domain.ThreadId) (bool, error) {
	m.record("ThreadExists")
	if m.threadExistsFunc != nil {
		return m.threadExistsFunc(id)
	}
	return m.UnimplementedStorage.ThreadExists(ctx, id)
}

func (m *mockStorage) AddThread(ctx context.Context, data domain.ThreadCreationData) (domain.AddedThread, error) {
	m.record("AddThread")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(data)
	}
	return m.UnimplementedStorage.AddThread(ctx, data)
}

func (m *mockStorage) GetThread(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	m.record("GetThread")
	if m.getThreadFunc != nil {
		return m.getThreadFunc(id)
	}
	return m.UnimplementedStorage.GetThread(ctx, id)
}

func (m *mockStorage) CommentExists(ctx context.Context, id domain.CommentId) (bool, error) {
	m.record("CommentExists")
	if m.commentExistsFunc != nil {
		return m.commentExistsFunc(id)
	}
	return m.UnimplementedStorage.CommentExists(ctx, id)
}

func (m *mockStorage) CommentOwnedBy(ctx context.Context, id domain.CommentId, userId domain.UserId) (bool, error) {
	m.record("CommentOwnedBy")
	if m.commentOwnedByFunc != nil {
		return m.commentOwnedByFunc(id, userId)
	}
	return m.UnimplementedStorage.CommentOwnedBy(ctx, id, userId)
}

func (m *mockStorage) AddComment(ctx context.Context, data domain.CommentCreationData) (domain.AddedComment, error) {
	m.record("AddComment")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(data)
	}
	return m.UnimplementedStorage.AddComment(ctx, data)
}

func (m *mockStorage) CommentsByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	m.record("CommentsByThread")
	if m.commentsByThreadFunc != nil {
		return m.commentsByThreadFunc(threadId)
	}
	return m.UnimplementedStorage.CommentsByThread(ctx, threadId)
}

func (m *mockStorage) SoftDeleteComment(ctx context.Context, id domain.CommentId) error {
	m.record("SoftDeleteComment")
	if m.softDeleteCommentFunc != nil {
		return m.softDeleteCommentFunc(id)
	}
	return m.UnimplementedStorage.SoftDeleteComment(ctx, id)
}

func (m *mockStorage) ReplyExists(ctx context.Context, id domain.ReplyId) (bool, error) {
	m.record("ReplyExists")
	if m.replyExistsFunc != nil {
		return m.replyExistsFunc(id)
	}
	return m.UnimplementedStorage.ReplyExists(ctx, id)
}

func (m *mockStorage) ReplyOwnedBy(ctx context.Context, id domain.ReplyId, userId domain.UserId) (bool, error) {
	m.record("ReplyOwnedBy")
	if m.replyOwnedByFunc != nil {
		return m.replyOwnedByFunc(id, userId)
	}
	return m.UnimplementedStorage.ReplyOwnedBy(ctx, id, userId)
}

func (m *mockStorage) AddReply(ctx context.Context, data domain.ReplyCreationData) (domain.AddedReply, error) {
	m.record("AddReply")
	if m.addReplyFunc != nil {
		return m.addReplyFunc(data)
	}
	return m.UnimplementedStorage.AddReply(ctx, data)
}

func (m *mockStorage) RepliesByCommentIds(ctx context.Context, ids []domain.CommentId) ([]domain.ReplyRow, error) {
	m.record("RepliesByCommentIds")
	if m.repliesByCommentIdsFunc != nil {
		return m.repliesByCommentIdsFunc(ids)
	}
	return m.UnimplementedStorage.RepliesByCommentIds(ctx, ids)
}

func (m *mockStorage) SoftDeleteReply(ctx context.Context, id domain.ReplyId) error {
	m.record("SoftDeleteReply")
	if m.softDeleteReplyFunc != nil {
		return m.softDeleteReplyFunc(id)
	}
	return m.UnimplementedStorage.SoftDeleteReply(ctx, id)
}

func (m *mockStorage) LikeExists(ctx context.Context, commentId domain.CommentId, userId domain.UserId) (bool, error) {
	m.record("LikeExists")
	if m.likeExistsFunc != nil {
		return m.likeExistsFunc(commentId, userId)
	}
	return m.UnimplementedStorage.LikeExists(ctx, commentId, userId)
}

func (m *mockStorage) AddLike(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error {
	m.record("AddLike")
	if m.addLikeFunc != nil {
		return m.addLikeFunc(commentId, userId)
	}
	return m.UnimplementedStorage.AddLike(ctx, commentId, userId)
}

func (m *mockStorage) RemoveLike(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error {
	m.record("RemoveLike")
	if m.removeLikeFunc != nil {
		return m.removeLikeFunc(commentId, userId)
	}
	return m.UnimplementedStorage.RemoveLike(ctx, commentId, userId)
}

func (m *mockStorage) LikeCountsByCommentIds(ctx context.Context, ids []domain.CommentId) ([]domain.LikeCount, error) {
	m.record("LikeCountsByCommentIds")
	if m.likeCountsFunc != nil {
		return m.likeCountsFunc(ids)
	}
	return m.UnimplementedStorage.LikeCountsByCommentIds(ctx, ids)
}

func (m *mockStorage) UsernameExists(ctx context.Context, username domain.Username) (bool, error) {
	m.record("UsernameExists")
	if m.usernameExistsFunc != nil {
		return m.usernameExistsFunc(username)
	}
	return m.UnimplementedStorage.UsernameExists(ctx, username)
}

func (m *mockStorage) AddUser(ctx context.Context, data domain.UserCreationData) (domain.AddedUser, error) {
	m.record("AddUser")
	if m.addUserFunc != nil {
		return m.addUserFunc(data)
	}
	return m.UnimplementedStorage.AddUser(ctx, data)
}

func (m *mockStorage) UserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	m.record("UserByUsername")
	if m.userByUsernameFunc != nil {
		return m.userByUsernameFunc(username)
	}
	return m.UnimplementedStorage.UserByUsername(ctx, username)
}

// always is a shorthand for existence funcs that ignore their argument.
func always(ok bool) func(string) (bool, error) {
	return func(string) (bool, error) { return ok, nil }
}

func owned(ok bool) func(string, string) (bool, error) {
	return func(string, string) (bool, error) { return ok, nil }
}

// --- In-memory store ---

// memStorage is a small in-memory Storage used for scenario tests.
type memStorage struct {
	UnimplementedStorage

	mu       sync.Mutex
	seq      int
	now      time.Time
	users    map[domain.UserId]domain.User
	threads  map[domain.ThreadId]memThread
	comments []memComment
	replies  []memReply
	likes    map[[2]string]bool
}

type memThread struct {
	domain.ThreadCreationData
	id   domain.ThreadId
	date time.Time
}

type memComment struct {
	domain.CommentCreationData
	id      domain.CommentId
	date    time.Time
	deleted bool
}

type memReply struct {
	domain.ReplyCreationData
	id      domain.ReplyId
	date    time.Time
	deleted bool
}

func newMemStorage() *memStorage {
	return &memStorage{
		now:     time.Date(2024, 12, 30, 12, 0, 0, 0, time.UTC),
		users:   map[domain.UserId]domain.User{},
		threads: map[domain.ThreadId]memThread{},
		likes:   map[[2]string]bool{},
	}
}

// next returns a fresh id and a strictly increasing date. Callers hold mu.
func (s *memStorage) next(prefix string) (string, time.Time) {
	s.seq++
	return fmt.Sprintf("%s%d", prefix, s.seq), s.now.Add(time.Duration(s.seq) * time.Second)
}

func (s *memStorage) addUser(username domain.Username) domain.UserId {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, _ := s.next(domain.UserIdPrefix)
	s.users[id] = domain.User{Id: id, Username: username}
	return id
}

func (s *memStorage) ThreadExists(_ context.Context, id domain.ThreadId) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.threads[id]
	return ok, nil
}

func (s *memStorage) AddThread(_ context.Context, data domain.ThreadCreationData) (domain.AddedThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, date := s.next(domain.ThreadIdPrefix)
	s.threads[id] = memThread{data, id, date}
	return domain.AddedThread{Id: id, Title: data.Title, Owner: data.Owner}, nil
}

func (s *memStorage) GetThread(_ context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.threads[id]
	if !ok {
		return domain.ThreadDetail{}, internal_errors.NotFound("thread tidak ditemukan")
	}
	return domain.ThreadDetail{Id: id, Title: t.Title, Body: t.Body, Username: s.users[t.Owner].Username, Date: t.date}, nil
}

func (s *memStorage) CommentExists(_ context.Context, id domain.CommentId) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findComment(id) >= 0, nil
}

func (s *memStorage) findComment(id domain.CommentId) int {
	for i, c := range s.comments {
		if c.id == id {
			return i
		}
	}
	return -1
}

func (s *memStorage) CommentOwnedBy(_ context.Context, id domain.CommentId, userId domain.UserId) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findComment(id)
	return i >= 0 && s.comments[i].Owner == userId, nil
}

func (s *memStorage) AddComment(_ context.Context, data domain.CommentCreationData) (domain.AddedComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, date := s.next(domain.CommentIdPrefix)
	s.comments = append(s.comments, memComment{CommentCreationData: data, id: id, date: date})
	return domain.AddedComment{Id: id, Content: data.Content, Owner: data.Owner}, nil
}

func (s *memStorage) CommentsByThread(_ context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []domain.CommentRow
	for _, c := range s.comments {
		if c.ThreadId == threadId {
			rows = append(rows, domain.CommentRow{Id: c.id, Username: s.users[c.Owner].Username, Date: c.date, Content: c.Content, IsDeleted: c.deleted})
		}
	}
	return rows, nil
}

func (s *memStorage) SoftDeleteComment(_ context.Context, id domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.findComment(id); i >= 0 {
		s.comments[i].deleted = true
	}
	return nil
}

func (s *memStorage) findReply(id domain.ReplyId) int {
	for i, r := range s.replies {
		if r.id == id {
			return i
		}
	}
	return -1
}

func (s *memStorage) ReplyExists(_ context.Context, id domain.ReplyId) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findReply(id) >= 0, nil
}

func (s *memStorage) ReplyOwnedBy(_ context.Context, id domain.ReplyId, userId domain.UserId) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findReply(id)
	return i >= 0 && s.replies[i].Owner == userId, nil
}

func (s *memStorage) AddReply(_ context.Context, data domain.ReplyCreationData) (domain.AddedReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, date := s.next(domain.ReplyIdPrefix)
	s.replies = append(s.replies, memReply{ReplyCreationData: data, id: id, date: date})
	return domain.AddedReply{Id: id, Content: data.Content, Owner: data.Owner}, nil
}

func (s *memStorage) RepliesByCommentIds(_ context.Context, ids []domain.CommentId) ([]domain.ReplyRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := make(map[domain.CommentId]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var rows []domain.ReplyRow
	for _, r := range s.replies {
		if want[r.CommentId] {
			rows = append(rows, domain.ReplyRow{Id: r.id, CommentId: r.CommentId, Username: s.users[r.Owner].Username, Date: r.date, Content: r.Content, IsDeleted: r.deleted})
		}
	}
	return rows, nil
}

func (s *memStorage) SoftDeleteReply(_ context.Context, id domain.ReplyId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.findReply(id); i >= 0 {
		s.replies[i].deleted = true
	}
	return nil
}

func (s *memStorage) LikeExists(_ context.Context, commentId domain.CommentId, userId domain.UserId) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.likes[[2]string{commentId, userId}], nil
}

func (s *memStorage) AddLike(_ context.Context, commentId domain.CommentId, userId domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.likes[[2]string{commentId, userId}] = true
	return nil
}

func (s *memStorage) RemoveLike(_ context.Context, commentId domain.CommentId, userId domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.likes, [2]string{commentId, userId})
	return nil
}

func (s *memStorage) LikeCountsByCommentIds(_ context.Context, ids []domain.CommentId) ([]domain.LikeCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var counts []domain.LikeCount
	for _, id := range ids {
		n := 0
		for key := range s.likes {
			if key[0] == id {
				n++
			}
		}
		if n > 0 {
			counts = append(counts, domain.LikeCount{CommentId: id, Count: n})
		}
	}
	return counts, nil
}

// newServices wires every use case onto one store.
func newServices(s Storage) (ThreadService, CommentService, ReplyService, LikeService) {
	v := NewVerifier(s, s, s)
	m := NewMaterializer(v, s, s, s, s)
	return NewThread(s, m), NewComment(s, v), NewReply(s, v), NewLike(s, v)
}
