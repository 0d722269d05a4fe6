package grpc

import (
	"encoding/json"
	"fmt"

	pb "github.com/dmitrijs2005/gophaccounts/internal/proto"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/dmitrijs2005/gophaccounts/internal/server/services"
)

// userToPB returns nil for a nil user. The profile document travels as JSON
// text; the password hash is never copied.
func userToPB(u *models.User) (*pb.User, error) {
	if u == nil {
		return nil, nil
	}

	profile := u.ProfileJSON
	if profile == nil {
		profile = map[string]any{}
	}
	b, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("encode profile_json: %w", err)
	}

	return &pb.User{
		Id:               u.ID,
		Username:         u.UserName,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		AvatarUrl:        u.AvatarURL,
		PrimaryContact:   u.PrimaryContact,
		SecondaryContact: u.SecondaryContact,
		ProfileJson:      string(b),
	}, nil
}

func authToPB(res *services.AuthResult) (*pb.AuthResponse, error) {
	user, err := userToPB(res.User)
	if err != nil {
		return nil, err
	}
	return &pb.AuthResponse{
		User:         user,
		AccessToken:  res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
	}, nil
}

func registerInput(req *pb.RegisterRequest) services.RegisterInput {
	return services.RegisterInput{
		Email:     req.GetEmail(),
		Password:  req.GetPassword(),
		UserName:  req.GetUsername(),
		FirstName: req.GetFirstName(),
		LastName:  req.GetLastName(),
	}
}

// profileUpdate keeps unset optional fields nil so they are left alone.
func profileUpdate(req *pb.UpdateProfileRequest) services.ProfileUpdate {
	return services.ProfileUpdate{
		PrimaryContact:   req.PrimaryContact,
		SecondaryContact: req.SecondaryContact,
		AvatarURL:        req.AvatarUrl,
	}
}
