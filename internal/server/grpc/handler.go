package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/gophaccounts/internal/proto"
	"github.com/dmitrijs2005/gophaccounts/internal/server/api"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {

	s.logger.Info(ctx, "Registration request")

	result, err := s.users.Register(ctx, registerInput(req))
	if err != nil {
		return nil, s.toStatus(ctx, "Register", err)
	}

	resp, err := authToPB(result)
	if err != nil {
		return nil, s.toStatus(ctx, "Register", err)
	}

	s.logger.Info(ctx, "Registered", "user_id", result.User.ID)
	return resp, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {

	result, err := s.users.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, "Login", err)
	}

	resp, err := authToPB(result)
	if err != nil {
		return nil, s.toStatus(ctx, "Login", err)
	}

	return resp, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UserResponse, error) {

	user, err := s.users.UpdateProfile(ctx, callerFrom(ctx), profileUpdate(req))
	if err != nil {
		return nil, s.toStatus(ctx, "UpdateProfile", err)
	}

	return s.userResponse(ctx, "UpdateProfile", user)
}

func (s *GRPCServer) Me(ctx context.Context, _ *pb.MeRequest) (*pb.UserResponse, error) {

	user, err := s.users.Me(ctx, callerFrom(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, "Me", err)
	}

	return s.userResponse(ctx, "Me", user)
}

func (s *GRPCServer) AvatarUploadURL(ctx context.Context, _ *pb.AvatarUploadURLRequest) (*pb.AvatarUploadURLResponse, error) {

	up, err := s.users.AvatarUploadURL(ctx, callerFrom(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, "AvatarUploadURL", err)
	}

	return &pb.AvatarUploadURLResponse{Key: up.Key, UploadUrl: up.UploadURL, AvatarUrl: up.AvatarURL}, nil
}

// userResponse wraps user, which is nil for an anonymous Me.
func (s *GRPCServer) userResponse(ctx context.Context, method string, user *models.User) (*pb.UserResponse, error) {
	u, err := userToPB(user)
	if err != nil {
		return nil, s.toStatus(ctx, method, err)
	}
	return &pb.UserResponse{User: u}, nil
}

// toStatus converts a service error to a gRPC status, logging internals.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	kind, msg := api.Classify(err)

	switch kind {
	case api.KindDuplicate:
		return status.Error(codes.AlreadyExists, msg)
	case api.KindUnauthenticated:
		return status.Error(codes.Unauthenticated, msg)
	case api.KindInvalid:
		return status.Error(codes.InvalidArgument, msg)
	case api.KindUnavailable:
		return status.Error(codes.FailedPrecondition, msg)
	}

	s.logger.Error(ctx, "request failed", "method", method, "error", err)
	return status.Error(codes.Internal, msg)
}
