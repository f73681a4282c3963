package contentschema

// UnknownPolicy controls how object keys outside the declared set are handled.
type UnknownPolicy int

const (
	UnknownPassthrough UnknownPolicy = iota // Accept unknown keys (JSON Schema default).
	UnknownStrict                           // Reject unknown keys (additionalProperties: false).
)

// Severity expresses the severity level for decode-time findings.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity
}

// DecodeOpt bundles decoding options for ValidateFrom and ValidateReader.
type DecodeOpt struct {
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
	FailFast   bool
	// Warnings receives Warn-level findings (for example duplicate keys) when set.
	Warnings func(Issue)
}
