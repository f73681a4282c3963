package contentschema

import (
	"context"
	"errors"
	"io"

	eng "github.com/wcc-platform/contentschema/internal/engine"
)

// ValidateFrom is the primary entry point. It consumes tokens from the Source,
// builds a generic tree, and delegates validation to the Schema. The decoded
// tree is returned even when validation fails so callers can report against it.
func ValidateFrom(ctx context.Context, s Schema, src Source, opts ...DecodeOpt) (any, error) {
	if s == nil {
		return nil, singleIssue(CodeParseError, "nil schema")
	}
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	v, err := Decode(src, opt)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(ctx, v); err != nil {
		return v, IssuesFromErr("/", err)
	}
	return v, nil
}

// ValidateReader validates input read from r in the given format. When MaxBytes
// is set it enforces the size cap up front.
func ValidateReader(ctx context.Context, s Schema, format string, r io.Reader, opts ...DecodeOpt) (any, error) {
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, singleIssue(CodeParseError, err.Error())
	}
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, singleIssue(CodeTruncated, "max bytes exceeded")
	}
	return ValidateFrom(ctx, s, SourceFor(format, data), opts...)
}

// Decode builds the generic tree for src, applying duplicate-key and depth
// enforcement from opt. Decode failures are returned as Issues.
func Decode(src Source, opt DecodeOpt) (any, error) {
	var sink func(eng.SimpleIssue)
	if opt.Warnings != nil {
		sink = func(si eng.SimpleIssue) {
			opt.Warnings(Issue{Path: si.Path, Code: si.Code, Message: si.Message})
		}
	}
	enforced := eng.WrapWithEnforcement(src.tokens(), eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		IssueSink:   sink,
		FailFast:    opt.FailFast,
	})
	v, err := eng.DecodeAny(enforced)
	if err != nil {
		return nil, toIssues(err)
	}
	return v, nil
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: ie.Message})
	}
	if errors.Is(err, io.EOF) {
		return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: "empty document", Cause: err})
	}
	return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err})
}
