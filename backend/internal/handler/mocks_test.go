package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/stretchr/testify/require"
)

type MockAuthService struct {
	MockRegister func(ctx context.Context, username domain.Username, password domain.Password, fullname string) (domain.AddedUser, error)
	MockLogin    func(ctx context.Context, creds domain.Credentials) (string, error)
}

func (m *MockAuthService) Register(ctx context.Context, username domain.Username, password domain.Password, fullname string) (domain.AddedUser, error) {
	if m.MockRegister != nil {
		return m.MockRegister(ctx, username, password, fullname)
	}
	return domain.AddedUser{}, nil // Default behavior
}

func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(ctx, creds)
	}
	return "", nil // Default behavior
}

type MockThreadService struct {
	MockCreate func(ctx context.Context, data domain.ThreadCreationData) (domain.AddedThread, error)
	MockGet    func(ctx context.Context, id domain.ThreadId) (domain.MaterializedThread, error)
}

func (m *MockThreadService) Create(ctx context.Context, data domain.ThreadCreationData) (domain.AddedThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, data)
	}
	return domain.AddedThread{}, nil // Default behavior
}

func (m *MockThreadService) Get(ctx context.Context, id domain.ThreadId) (domain.MaterializedThread, error) {
	if m.MockGet != nil {
		return m.MockGet(ctx, id)
	}
	return domain.MaterializedThread{}, nil // Default behavior
}

type MockCommentService struct {
	MockAdd    func(ctx context.Context, data domain.CommentCreationData) (domain.AddedComment, error)
	MockDelete func(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error
}

func (m *MockCommentService) Add(ctx context.Context, data domain.CommentCreationData) (domain.AddedComment, error) {
	if m.MockAdd != nil {
		return m.MockAdd(ctx, data)
	}
	return domain.AddedComment{}, nil // Default behavior
}

func (m *MockCommentService) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, threadId, commentId, userId)
	}
	return nil // Default behavior
}

type MockReplyService struct {
	MockAdd    func(ctx context.Context, threadId domain.ThreadId, data domain.ReplyCreationData) (domain.AddedReply, error)
	MockDelete func(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, userId domain.UserId) error
}

func (m *MockReplyService) Add(ctx context.Context, threadId domain.ThreadId, data domain.ReplyCreationData) (domain.AddedReply, error) {
	if m.MockAdd != nil {
		return m.MockAdd(ctx, threadId, data)
	}
	return domain.AddedReply{}, nil // Default behavior
}

func (m *MockReplyService) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, userId domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, threadId, commentId, replyId, userId)
	}
	return nil // Default behavior
}

type MockLikeService struct {
	MockToggle func(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) (bool, error)
}

func (m *MockLikeService) Toggle(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) (bool, error) {
	if m.MockToggle != nil {
		return m.MockToggle(ctx, threadId, commentId, userId)
	}
	return false, nil // Default behavior
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil // Default: healthy
}

var testUser = &domain.User{Id: "user-123", Username: "dicoding"}

func newTestHandler() *Handler {
	cfg := &config.Config{Public: config.Public{JwtTTL: time.Hour, MaxBodySize: 1024}}
	return New(Services{
		Auth:    &MockAuthService{},
		Thread:  &MockThreadService{},
		Comment: &MockCommentService{},
		Reply:   &MockReplyService{},
		Like:    &MockLikeService{},
	}, &MockHealthChecker{}, cfg)
}

// newTestRouter mounts the handlers under their public paths without the auth middleware,
// tests put the user in the context themselves.
func newTestRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/v1/users", h.Register)
	r.Post("/v1/authentications", h.Login)
	r.Delete("/v1/authentications", h.Logout)
	r.Post("/v1/threads", h.CreateThread)
	r.Get("/v1/threads/{threadId}", h.GetThread)
	r.Post("/v1/threads/{threadId}/comments", h.AddComment)
	r.Delete("/v1/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	r.Post("/v1/threads/{threadId}/comments/{commentId}/replies", h.AddReply)
	r.Delete("/v1/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	r.Put("/v1/threads/{threadId}/comments/{commentId}/likes", h.ToggleLike)
	return r
}

func createRequest(t *testing.T, method, url, body string, user *domain.User) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		req = req.WithContext(context.WithValue(req.Context(), mw.UserClaimsKey, user))
	}
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	newTestRouter(h).ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), "body: %s", rr.Body.String())
	return env
}

func decodeData[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	env := decodeEnvelope(t, rr)
	require.Equal(t, "success", env.Status)
	var data T
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data
}
