package vault

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/gorewood/docket/internal/output"
)

// S3API is the subset of the S3 client used by S3.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config holds configuration for an S3-backed vault.
type S3Config struct {
	Bucket string
	Prefix string
	Region string
}

// S3 creates documents as objects under a bucket prefix.
// Collisions are detected by S3 itself with a conditional put.
type S3 struct {
	client    S3API
	bucket    string
	prefix    string
	overwrite bool
}

// NewS3 creates an S3 vault using the default AWS credential chain
// (environment, shared config, instance role).
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, output.NewUserError("DOCKET_S3_BUCKET is required for s3 storage")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, output.NewSystemError("failed to load AWS config", err)
	}

	return NewS3WithClient(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Prefix), nil
}

// NewS3WithClient creates an S3 vault around an existing client.
func NewS3WithClient(client S3API, bucket, prefix string) *S3 {
	return &S3{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// WithOverwrite makes Create replace an existing object instead of failing.
// Returns the vault for chaining.
func (v *S3) WithOverwrite(overwrite bool) *S3 {
	v.overwrite = overwrite
	return v
}

// Create uploads content as <prefix>/<name>.
func (v *S3) Create(ctx context.Context, name, content string) (Handle, error) {
	if err := validateName(name); err != nil {
		return Handle{}, err
	}

	key := name
	if v.prefix != "" {
		key = path.Join(v.prefix, name)
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(v.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(content),
		ContentType: aws.String("text/markdown; charset=utf-8"),
	}
	if !v.overwrite {
		input.IfNoneMatch = aws.String("*")
	}

	if _, err := v.client.PutObject(ctx, input); err != nil {
		if isPreconditionFailure(err) {
			return Handle{}, output.NewConflictError("file already exists: "+name, err)
		}
		return Handle{}, output.NewSystemError(fmt.Sprintf("failed to upload %s: %v", name, err), err)
	}

	return Handle{Name: name, Location: "s3://" + v.bucket + "/" + key}, nil
}

// isPreconditionFailure reports whether err is S3 refusing a conditional put
// because the key already exists.
func isPreconditionFailure(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "PreconditionFailed", "ConditionalRequestConflict":
		return true
	default:
		return false
	}
}
