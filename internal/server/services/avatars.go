package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/google/uuid"
)

const avatarPresignTTL = 15 * time.Minute

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	newObjectID = uuid.NewString
)

// avatarKey is the object key for a new avatar of userID.
func avatarKey(userID string) string {
	return userID + "/" + newObjectID()
}

// avatarBaseURL is where uploaded avatars are served from: the configured
// public base URL, else the path-style bucket URL on the S3 endpoint. It is
// "" when neither is known.
func (s *UserService) avatarBaseURL() string {
	if base := strings.TrimRight(s.config.S3PublicBaseURL, "/"); base != "" {
		return base
	}
	if endpoint := strings.TrimRight(s.config.S3BaseEndpoint, "/"); endpoint != "" {
		return endpoint + "/" + s.config.S3Bucket
	}
	return ""
}

func (s *UserService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// AvatarUploadURL presigns a PUT for a fresh avatar object owned by the
// caller. The returned AvatarURL can then be stored with UpdateProfile.
func (s *UserService) AvatarUploadURL(ctx context.Context, caller Caller) (*AvatarUpload, error) {
	if caller.Anonymous() {
		return nil, common.ErrAuthenticationRequired
	}
	baseURL := s.avatarBaseURL()
	if s.config.S3Bucket == "" || baseURL == "" {
		return nil, common.ErrAvatarStorageDisabled
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3 config: %w", err)
	}

	bucket := s.config.S3Bucket
	key := avatarKey(caller.UserID)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(avatarPresignTTL))
	if err != nil {
		return nil, fmt.Errorf("presign avatar upload: %w", err)
	}

	s.log.Debug(ctx, "avatar upload presigned", "user_id", caller.UserID, "key", key)

	return &AvatarUpload{
		Key:       key,
		UploadURL: req.URL,
		AvatarURL: baseURL + "/" + key,
	}, nil
}
