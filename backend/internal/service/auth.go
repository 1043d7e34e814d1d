package service

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
	"golang.org/x/crypto/bcrypt"
)

const maxUsernameLength = 50

// bcrypt only looks at the first 72 bytes and refuses longer input
const maxPasswordLength = 72

var usernamePattern = regexp.MustCompile(`^\w+$`)

type AuthService interface {
	Register(ctx context.Context, username domain.Username, password domain.Password, fullname string) (domain.AddedUser, error)
	Login(ctx context.Context, creds domain.Credentials) (string, error)
}

type Auth struct {
	storage UserStorage
	jwt     Jwt
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage UserStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

func (a *Auth) Register(ctx context.Context, username domain.Username, password domain.Password, fullname string) (domain.AddedUser, error) {
	if len(username) > maxUsernameLength {
		return domain.AddedUser{}, errors.BadRequest("tidak dapat membuat user baru karena karakter username melebihi batas limit")
	}
	if !usernamePattern.MatchString(username) {
		return domain.AddedUser{}, errors.BadRequest("tidak dapat membuat user baru karena username mengandung karakter terlarang")
	}
	if len(password) > maxPasswordLength {
		return domain.AddedUser{}, errors.BadRequest("tidak dapat membuat user baru karena karakter password melebihi batas limit")
	}

	taken, err := a.storage.UsernameExists(ctx, username)
	if err != nil {
		return domain.AddedUser{}, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return domain.AddedUser{}, errors.BadRequest("username tidak tersedia")
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.AddedUser{}, err
	}

	// a concurrent registration of the same name comes back from the store as a 400
	added, err := a.storage.AddUser(ctx, domain.UserCreationData{Username: username, PassHash: string(passHash), Fullname: fullname})
	if err != nil {
		return domain.AddedUser{}, fmt.Errorf("failed to add user: %w", err)
	}
	return added, nil
}

// Login returns an access token. Unknown users and wrong passwords fail the same way.
func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	user, err := a.storage.UserByUsername(ctx, creds.Username)
	if err != nil {
		// to not leak existing users
		if errors.IsNotFound(err) {
			return "", &errors.ErrorWithStatusCode{Message: "kredensial yang Anda masukkan salah", StatusCode: http.StatusUnauthorized}
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		logger.Log.Debug("password verification failed", "user_id", user.Id)
		return "", &errors.ErrorWithStatusCode{Message: "kredensial yang Anda masukkan salah", StatusCode: http.StatusUnauthorized}
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}
	return token, nil
}
