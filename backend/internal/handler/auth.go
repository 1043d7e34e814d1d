package handler

import (
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	body, err := decode[api.RegisterRequest](h, w, r, "REGISTER_USER")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.auth.Register(r.Context(), body.Username, body.Password, body.Fullname)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedUserData{AddedUser: user})
}

// Login answers with the token in the body and also sets it as a cookie for browsers.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	body, err := decode[api.LoginRequest](h, w, r, "LOGIN_USER")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	accessToken, err := h.auth.Login(r.Context(), domain.Credentials{Username: body.Username, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	cookie := &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    accessToken,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.cfg != nil {
		cookie.MaxAge = int(h.cfg.JwtTTL().Seconds())
		cookie.Secure = h.cfg.Public.Http.SecureCookies
	}
	http.SetCookie(w, cookie)

	utils.WriteSuccess(w, http.StatusCreated, api.LoginData{AccessToken: accessToken})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie := &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
	}
	http.SetCookie(w, cookie)

	utils.WriteSuccess(w, http.StatusOK, nil)
}
