package handler

import (
	"context"
	"net/http"

	"github.com/itchan-dev/forum/backend/internal/service"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/utils"
	"github.com/itchan-dev/forum/shared/validation"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth    service.AuthService
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	like    service.LikeService
	health  HealthChecker
	cfg     *config.Config
}

type Services struct {
	Auth    service.AuthService
	Thread  service.ThreadService
	Comment service.CommentService
	Reply   service.ReplyService
	Like    service.LikeService
}

func New(s Services, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{
		auth:    s.Auth,
		thread:  s.Thread,
		comment: s.Comment,
		reply:   s.Reply,
		like:    s.Like,
		health:  health,
		cfg:     cfg,
	}
}

type sanitizer interface {
	Sanitize()
}

// decode caps the body at the configured size and decodes it into T.
// Payloads with free text are stripped of markup and checked again, so a field
// holding nothing but tags counts as missing.
func decode[T any](h *Handler, w http.ResponseWriter, r *http.Request, entity string) (T, error) {
	if h.cfg != nil && h.cfg.Public.MaxBodySize > 0 {
		validation.LimitBody(w, r, h.cfg.Public.MaxBodySize)
	}
	body, err := validation.DecodePayload[T](r.Body, entity)
	if err != nil {
		return body, err
	}
	if s, ok := any(&body).(sanitizer); ok {
		s.Sanitize()
		if err := validation.Struct(entity, body); err != nil {
			return body, err
		}
	}
	return body, nil
}

// requireUser writes 401 and returns nil when the request carries no user.
func requireUser(w http.ResponseWriter, r *http.Request) *domain.User {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, internal_errors.Unauthorized("Missing authentication"))
		return nil
	}
	return user
}
