package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hcridlig/moovie-app-sub000/internal/command"
	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

type AuthRegisterBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthRegisterResponse struct {
	UserID int64 `json:"user_id"`
}

type AuthRegister struct {
	RegisterCmd command.Command[command.RegisterUserRequest, int64]
}

func (c AuthRegister) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body AuthRegisterBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to decode registration body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if body.Username == "" || body.Email == "" || body.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	userID, err := c.RegisterCmd.Execute(ctx, command.RegisterUserRequest{
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		if errors.Is(err, command.ErrEmailTaken) {
			writeJSONError(w, http.StatusBadRequest, command.ErrEmailTaken.Error())
			return
		}

		logger.ErrorContext(ctx, "failed to register user", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(AuthRegisterResponse{UserID: userID}); err != nil {
		logger.ErrorContext(ctx, "unable to write registration response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
