package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) AddReply(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	body, err := decode[api.CreateReplyRequest](h, w, r, "ADD_REPLY")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	reply, err := h.reply.Add(r.Context(), chi.URLParam(r, "threadId"), domain.ReplyCreationData{
		Content:   body.Content,
		CommentId: chi.URLParam(r, "commentId"),
		Owner:     user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedReplyData{AddedReply: reply})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	err := h.reply.Delete(r.Context(),
		chi.URLParam(r, "threadId"),
		chi.URLParam(r, "commentId"),
		chi.URLParam(r, "replyId"),
		user.Id,
	)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
