package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubS3 replaces the AWS seams for the duration of the test.
func stubS3(t *testing.T, presign func(in *s3.PutObjectInput) (*v4.PresignedHTTPRequest, error)) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := presignPutObject
	origID := newObjectID
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		newObjectID = origID
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return presign(in)
	}
	newObjectID = func() string { return "obj-1" }
}

func TestAvatarUploadURL_Success(t *testing.T) {
	svc, _, _ := newTestService(t)

	var gotBucket, gotKey string
	stubS3(t, func(in *s3.PutObjectInput) (*v4.PresignedHTTPRequest, error) {
		gotBucket, gotKey = *in.Bucket, *in.Key
		return &v4.PresignedHTTPRequest{URL: "http://127.0.0.1:9000/avatars/" + *in.Key + "?X-Amz-Signature=abc"}, nil
	})

	up, err := svc.AvatarUploadURL(context.Background(), Caller{UserID: "u-7"})
	require.NoError(t, err)

	assert.Equal(t, "avatars", gotBucket)
	assert.Equal(t, "u-7/obj-1", gotKey)
	assert.Equal(t, "u-7/obj-1", up.Key)
	assert.Contains(t, up.UploadURL, "X-Amz-Signature")
	assert.Equal(t, "https://cdn.example/avatars/u-7/obj-1", up.AvatarURL)
}

func TestAvatarUploadURL_Anonymous(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.AvatarUploadURL(context.Background(), Caller{})
	assert.ErrorIs(t, err, common.ErrAuthenticationRequired)
}

func TestAvatarUploadURL_StorageDisabled(t *testing.T) {
	svc, _, _ := newTestService(t)
	svc.config.S3Bucket = ""

	_, err := svc.AvatarUploadURL(context.Background(), Caller{UserID: "u-1"})
	assert.ErrorIs(t, err, common.ErrAvatarStorageDisabled)
}

func TestAvatarUploadURL_PresignError(t *testing.T) {
	svc, _, _ := newTestService(t)
	stubS3(t, func(*s3.PutObjectInput) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-fail")
	})

	_, err := svc.AvatarUploadURL(context.Background(), Caller{UserID: "u-1"})
	assert.ErrorContains(t, err, "presign-fail")
}

func Test_getPresignClient_AppliesConfig(t *testing.T) {
	svc, _, _ := newTestService(t)
	stubS3(t, nil)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		require.NotNil(t, lo.Credentials)
		creds, err := lo.Credentials.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "minioadmin", creds.AccessKeyID)
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}

	pc, err := svc.getPresignClient(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, pc)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = svc.getPresignClient(context.Background())
	assert.EqualError(t, err, "load-fail")
}

func TestAvatarUploadURL_PublicURLFallsBackToEndpoint(t *testing.T) {
	svc, _, _ := newTestService(t)
	svc.config.S3PublicBaseURL = ""
	stubS3(t, func(in *s3.PutObjectInput) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://signed"}, nil
	})

	up, err := svc.AvatarUploadURL(context.Background(), Caller{UserID: "u-7"})
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000/avatars/u-7/obj-1", up.AvatarURL)
}

func TestAvatarUploadURL_NoPublicLocationIsDisabled(t *testing.T) {
	svc, _, _ := newTestService(t)
	svc.config.S3PublicBaseURL = ""
	svc.config.S3BaseEndpoint = ""

	_, err := svc.AvatarUploadURL(context.Background(), Caller{UserID: "u-1"})
	assert.ErrorIs(t, err, common.ErrAvatarStorageDisabled)
}
