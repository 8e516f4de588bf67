package vault

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/gorewood/docket/internal/output"
)

type fakeS3 struct {
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.inputs = append(f.inputs, in)
	body, _ := io.ReadAll(in.Body)
	f.bodies = append(f.bodies, string(body))
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3_Create(t *testing.T) {
	client := &fakeS3{}
	v := NewS3WithClient(client, "firm-notes", "/vault/legal/")

	handle, err := v.Create(context.Background(), "Contract-2024-03-05.md", "# Contract Template\n")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if handle.Location != "s3://firm-notes/vault/legal/Contract-2024-03-05.md" {
		t.Errorf("Location = %q", handle.Location)
	}
	if handle.Path != "" {
		t.Errorf("Path = %q, want empty for remote store", handle.Path)
	}

	in := client.inputs[0]
	if aws.ToString(in.Bucket) != "firm-notes" || aws.ToString(in.Key) != "vault/legal/Contract-2024-03-05.md" {
		t.Errorf("put bucket/key = %s/%s", aws.ToString(in.Bucket), aws.ToString(in.Key))
	}
	if aws.ToString(in.IfNoneMatch) != "*" {
		t.Errorf("IfNoneMatch = %q, want conditional put", aws.ToString(in.IfNoneMatch))
	}
	if client.bodies[0] != "# Contract Template\n" {
		t.Errorf("body = %q", client.bodies[0])
	}
}

func TestS3_CreateOverwriteIsUnconditional(t *testing.T) {
	client := &fakeS3{}
	v := NewS3WithClient(client, "firm-notes", "").WithOverwrite(true)

	if _, err := v.Create(context.Background(), "Legal-Memo-2024-03-05.md", "x"); err != nil {
		t.Fatal(err)
	}
	if client.inputs[0].IfNoneMatch != nil {
		t.Error("overwrite should not send IfNoneMatch")
	}
	if aws.ToString(client.inputs[0].Key) != "Legal-Memo-2024-03-05.md" {
		t.Errorf("Key = %q", aws.ToString(client.inputs[0].Key))
	}
}

func TestS3_CreateErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "precondition failed is a conflict",
			err:      &smithy.GenericAPIError{Code: "PreconditionFailed", Message: "At least one of the pre-conditions you specified did not hold"},
			wantCode: output.ExitConflict,
		},
		{
			name:     "concurrent conditional write is a conflict",
			err:      &smithy.GenericAPIError{Code: "ConditionalRequestConflict"},
			wantCode: output.ExitConflict,
		},
		{
			name:     "access denied is a system error",
			err:      &smithy.GenericAPIError{Code: "AccessDenied"},
			wantCode: output.ExitSystemError,
		},
		{
			name:     "network error is a system error",
			err:      errors.New("dial tcp: i/o timeout"),
			wantCode: output.ExitSystemError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewS3WithClient(&fakeS3{err: tt.err}, "b", "")
			_, err := v.Create(context.Background(), "Client-Intake-2024-03-05.md", "x")
			if got := output.GetExitCode(err); got != tt.wantCode {
				t.Errorf("exit code = %d, want %d (err %v)", got, tt.wantCode, err)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("error should wrap the S3 error, got %v", err)
			}
		})
	}
}

func TestNewS3_RequiresBucket(t *testing.T) {
	if _, err := NewS3(context.Background(), S3Config{Region: "us-east-1"}); err == nil {
		t.Fatal("expected error without bucket")
	}
}
