package stream

// DecoderOption configures a Decoder.
type DecoderOption func(*decoderOpts)

type decoderOpts struct {
	maxDepth int // 0 means unlimited
}

// WithMaxDepth makes the Decoder fail on input nested deeper than n.
func WithMaxDepth(n int) DecoderOption {
	return func(opts *decoderOpts) {
		opts.maxDepth = n
	}
}

// EncoderOption configures an Encoder.
type EncoderOption func(*encoderOpts)

type encoderOpts struct {
	prefix string
	indent string
}

// WithIndent makes the Encoder put each key and array element on its own
// line, starting with prefix and indented by one copy of indent per
// nesting level.
func WithIndent(prefix, indent string) EncoderOption {
	return func(opts *encoderOpts) {
		opts.prefix = prefix
		opts.indent = indent
	}
}
