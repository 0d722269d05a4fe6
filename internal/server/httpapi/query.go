package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophaccounts/internal/server/api"
)

const (
	codeBadRequest      = "BAD_REQUEST"
	codeDuplicate       = "DUPLICATE"
	codeUnauthenticated = "UNAUTHENTICATED"
	codeInvalid         = "INVALID_ARGUMENT"
	codeUnavailable     = "UNAVAILABLE"
	codeInternal        = "INTERNAL"
)

type queryRequest struct {
	Operation string          `json:"operation"`
	Variables json.RawMessage `json:"variables"`
}

type queryError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type queryResponse struct {
	Data   any          `json:"data,omitempty"`
	Errors []queryError `json:"errors,omitempty"`
}

type operation func(s *Server, ctx context.Context, vars json.RawMessage) (any, error)

var operations = map[string]operation{
	"register":        (*Server).register,
	"login":           (*Server).login,
	"updateProfile":   (*Server).updateProfile,
	"me":              (*Server).me,
	"avatarUploadURL": (*Server).avatarUploadURL,
}

// errBadVariables marks variables that do not decode into the operation's
// argument set.
var errBadVariables = errors.New("bad variables")

func (s *Server) query(w http.ResponseWriter, r *http.Request) {
	var req queryRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeErrors(w, http.StatusBadRequest, queryError{Message: "malformed request body", Code: codeBadRequest})
		return
	}

	op, ok := operations[req.Operation]
	if !ok {
		writeErrors(w, http.StatusBadRequest, queryError{Message: fmt.Sprintf("unknown operation %q", req.Operation), Code: codeBadRequest})
		return
	}

	data, err := op(s, r.Context(), req.Variables)
	if err != nil {
		if errors.Is(err, errBadVariables) {
			writeErrors(w, http.StatusBadRequest, queryError{Message: err.Error(), Code: codeBadRequest})
			return
		}
		writeErrors(w, http.StatusOK, s.toQueryError(r.Context(), req.Operation, err))
		return
	}

	writeJSON(w, http.StatusOK, queryResponse{Data: data})
}

// decodeVars fills dst from vars. Unknown names are rejected so an operation
// only ever sees the arguments it declares.
func decodeVars(vars json.RawMessage, dst any) error {
	if len(bytes.TrimSpace(vars)) == 0 || bytes.Equal(bytes.TrimSpace(vars), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(vars))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %s", errBadVariables, err.Error())
	}
	return nil
}

func (s *Server) register(ctx context.Context, vars json.RawMessage) (any, error) {
	var req api.RegisterRequest
	if err := decodeVars(vars, &req); err != nil {
		return nil, err
	}
	res, err := s.users.Register(ctx, req.Input())
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "Registered", "user_id", res.User.ID)
	return api.NewAuthResponse(res), nil
}

func (s *Server) login(ctx context.Context, vars json.RawMessage) (any, error) {
	var req api.LoginRequest
	if err := decodeVars(vars, &req); err != nil {
		return nil, err
	}
	res, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return api.NewAuthResponse(res), nil
}

func (s *Server) updateProfile(ctx context.Context, vars json.RawMessage) (any, error) {
	var req api.UpdateProfileRequest
	if err := decodeVars(vars, &req); err != nil {
		return nil, err
	}
	user, err := s.users.UpdateProfile(ctx, callerFrom(ctx), req.Update())
	if err != nil {
		return nil, err
	}
	return api.UserResponse{User: api.FromModel(user)}, nil
}

func (s *Server) me(ctx context.Context, vars json.RawMessage) (any, error) {
	var req api.MeRequest
	if err := decodeVars(vars, &req); err != nil {
		return nil, err
	}
	user, err := s.users.Me(ctx, callerFrom(ctx))
	if err != nil {
		return nil, err
	}
	return api.UserResponse{User: api.FromModel(user)}, nil
}

func (s *Server) avatarUploadURL(ctx context.Context, vars json.RawMessage) (any, error) {
	var req api.AvatarUploadURLRequest
	if err := decodeVars(vars, &req); err != nil {
		return nil, err
	}
	up, err := s.users.AvatarUploadURL(ctx, callerFrom(ctx))
	if err != nil {
		return nil, err
	}
	return api.AvatarUploadURLResponse{Key: up.Key, UploadURL: up.UploadURL, AvatarURL: up.AvatarURL}, nil
}

func (s *Server) toQueryError(ctx context.Context, op string, err error) queryError {
	kind, msg := api.Classify(err)

	switch kind {
	case api.KindDuplicate:
		return queryError{Message: msg, Code: codeDuplicate}
	case api.KindUnauthenticated:
		return queryError{Message: msg, Code: codeUnauthenticated}
	case api.KindInvalid:
		return queryError{Message: msg, Code: codeInvalid}
	case api.KindUnavailable:
		return queryError{Message: msg, Code: codeUnavailable}
	}

	s.logger.Error(ctx, "request failed", "operation", op, "error", err)
	return queryError{Message: msg, Code: codeInternal}
}

func writeErrors(w http.ResponseWriter, status int, errs ...queryError) {
	writeJSON(w, status, queryResponse{Errors: errs})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
