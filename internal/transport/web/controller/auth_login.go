package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hcridlig/moovie-app-sub000/internal/command"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

type AuthLoginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthLoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type AuthLogin struct {
	LoginCmd command.Command[command.LoginUserRequest, command.LoginUserResponse]
}

func (c AuthLogin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body AuthLoginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to decode login body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, err := c.LoginCmd.Execute(ctx, command.LoginUserRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		if errors.Is(err, command.ErrInvalidCredentials) {
			writeJSONError(w, http.StatusBadRequest, command.ErrInvalidCredentials.Error())
			return
		}

		logger.ErrorContext(ctx, "failed to log user in", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(AuthLoginResponse{
		Token: res.Token,
		User:  res.User,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write login response", "error", err)
	}
}
