package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	liked, err := h.like.Toggle(r.Context(), chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	metrics.RecordToggle(liked)

	utils.WriteSuccess(w, http.StatusOK, api.LikeData{Liked: liked})
}
