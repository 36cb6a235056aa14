package strictjson

import (
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// A Decoder decodes JSON documents with a fixed configuration. It holds no
// per-document state and is safe for concurrent use.
type Decoder struct {
	cfg    Config
	logger log.Logger
}

// NewDecoder returns a Decoder for cfg. A nil logger discards log output.
func NewDecoder(cfg Config, logger log.Logger) (*Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Decoder{cfg: cfg, logger: logger}, nil
}

var defaultDecoder = &Decoder{cfg: DefaultConfig(), logger: log.NewNopLogger()}

// Decode decodes text using DefaultConfig. On failure it returns null and an
// error wrapping an *Error.
func Decode(text string) (Value, error) {
	return defaultDecoder.Decode(text)
}

// MustDecode is like Decode but panics on failure.
func MustDecode(text string) Value {
	v, err := Decode(text)
	if err != nil {
		panic(err)
	}
	return v
}

// Config returns the decoder's configuration.
func (d *Decoder) Config() Config {
	return d.cfg
}

// Decode decodes one JSON document. Decoding stops at the first error; no
// partial value is returned, only null.
func (d *Decoder) Decode(text string) (Value, error) {
	start := time.Now()
	v, err := d.decode(text)
	if err != nil {
		var path Path
		if e, ok := err.(*Error); ok {
			path = e.Path()
		}
		level.Debug(d.logger).Log("msg", "decode failed", "kind", KindOf(err), "path", path, "err", err)
		return NullValue(), err
	}
	level.Debug(d.logger).Log("msg", "decoded document", "bytes", len(text), "kind", v.Kind(), "duration", time.Since(start))
	return v, nil
}

func (d *Decoder) decode(text string) (Value, error) {
	c := newParseContext(text, d.cfg)
	if err := c.matchDelimiters(); err != nil {
		return Value{}, err
	}
	return c.parseValue(0, len(c.text), 1)
}

// DecodeBytes decodes a document in UTF-8 or, given a byte order mark,
// UTF-16. Invalid sequences decode as U+FFFD.
func (d *Decoder) DecodeBytes(b []byte) (Value, error) {
	text, ok := DecodeText(b)
	if !ok {
		level.Debug(d.logger).Log("msg", "input is not validly encoded, replaced bad sequences", "bytes", len(b))
	}
	return d.Decode(text)
}

// DecodeInput decodes input, which must be a string, []byte (see
// DecodeBytes), []rune or []uint16 holding UTF-16 code units. A []uint16 with
// an unpaired surrogate fails with ErrorInvalidSurrogate; any other type
// fails with ErrorUnsupportedInputType.
func (d *Decoder) DecodeInput(input any) (Value, error) {
	switch in := input.(type) {
	case string:
		return d.Decode(in)
	case []byte:
		return d.DecodeBytes(in)
	case []rune:
		return d.Decode(CodepointsToString(in))
	case []uint16:
		cps, err := DecodeUTF16(in)
		if err != nil {
			return NullValue(), err
		}
		return d.Decode(CodepointsToString(cps))
	}
	return NullValue(), &Error{Kind: ErrorUnsupportedInputType, Msg: fmt.Sprintf("cannot decode input of type %T", input)}
}
