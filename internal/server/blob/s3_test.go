package blob

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func testStore() *S3Store {
	return NewS3Store(S3Config{
		Region:    "us-east-1",
		AccessKey: "ak",
		SecretKey: "sk",
		Bucket:    "dashboard",
	})
}

func stubAWS(t *testing.T) {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
}

func TestPut_BuildsInputAndReturnsPublicURL(t *testing.T) {
	stubAWS(t)
	origPut := putObject
	t.Cleanup(func() { putObject = origPut })

	var gotIn *s3.PutObjectInput
	putObject = func(_ *s3.Client, _ context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		gotIn = in
		return &s3.PutObjectOutput{}, nil
	}

	url, err := testStore().Put(context.Background(), "1700_report.pdf", []byte("%PDF-1.4"), "application/pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://dashboard.s3.us-east-1.amazonaws.com/1700_report.pdf" {
		t.Fatalf("unexpected url: %q", url)
	}
	if aws.ToString(gotIn.Bucket) != "dashboard" || aws.ToString(gotIn.Key) != "1700_report.pdf" {
		t.Fatalf("unexpected input: bucket=%q key=%q", aws.ToString(gotIn.Bucket), aws.ToString(gotIn.Key))
	}
	if aws.ToString(gotIn.ContentType) != "application/pdf" {
		t.Fatalf("content type not applied: %q", aws.ToString(gotIn.ContentType))
	}
	body, err := io.ReadAll(gotIn.Body)
	if err != nil || string(body) != "%PDF-1.4" {
		t.Fatalf("unexpected body: %q (%v)", body, err)
	}
}

func TestPut_Error(t *testing.T) {
	stubAWS(t)
	origPut := putObject
	t.Cleanup(func() { putObject = origPut })

	putObject = func(_ *s3.Client, _ context.Context, _ *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return nil, errors.New("denied")
	}

	_, err := testStore().Put(context.Background(), "k", nil, "")
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestSignedGetURL_AppliesTTL(t *testing.T) {
	stubAWS(t)
	origPresign := presignGetObject
	t.Cleanup(func() { presignGetObject = origPresign })

	var gotKey string
	var gotExpires time.Duration
	presignGetObject = func(_ *s3.PresignClient, _ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		gotKey = aws.ToString(in.Key)
		var opts s3.PresignOptions
		for _, fn := range optFns {
			fn(&opts)
		}
		gotExpires = opts.Expires
		return &v4.PresignedHTTPRequest{URL: "https://signed.example/" + gotKey}, nil
	}

	url, err := testStore().SignedGetURL(context.Background(), "1700_report.pdf", 300*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://signed.example/1700_report.pdf" {
		t.Fatalf("unexpected url: %q", url)
	}
	if gotExpires != 300*time.Second {
		t.Fatalf("want expires 300s, got %v", gotExpires)
	}
}

func TestSignedGetURL_DefaultTTL(t *testing.T) {
	stubAWS(t)
	origPresign := presignGetObject
	t.Cleanup(func() { presignGetObject = origPresign })

	var gotExpires time.Duration
	presignGetObject = func(_ *s3.PresignClient, _ context.Context, _ *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		var opts s3.PresignOptions
		for _, fn := range optFns {
			fn(&opts)
		}
		gotExpires = opts.Expires
		return &v4.PresignedHTTPRequest{URL: "https://signed.example/k"}, nil
	}

	if _, err := testStore().SignedGetURL(context.Background(), "k", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotExpires != DefaultSignedURLTTL {
		t.Fatalf("want default ttl %v, got %v", DefaultSignedURLTTL, gotExpires)
	}
}

func TestDelete_Error(t *testing.T) {
	stubAWS(t)
	origDelete := deleteObject
	t.Cleanup(func() { deleteObject = origDelete })

	deleteObject = func(_ *s3.Client, _ context.Context, _ *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		return nil, errors.New("denied")
	}

	if err := testStore().Delete(context.Background(), "k"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestPublicURL_BaseEndpoint(t *testing.T) {
	s := NewS3Store(S3Config{
		Region:       "us-east-1",
		Bucket:       "dashboard",
		BaseEndpoint: "http://127.0.0.1:9000/",
	})
	if got := s.publicURL("k"); got != "http://127.0.0.1:9000/dashboard/k" {
		t.Fatalf("unexpected url: %q", got)
	}
}
