package serializer

import (
	"github.com/ugorji/go/codec"

	"github.com/hyp3rd/ewrap"
)

// CBORSerializer serializes reports as CBOR through the ugorji codec.
type CBORSerializer struct{}

// Marshal serializes the given value into a byte slice.
func (*CBORSerializer) Marshal(v any) ([]byte, error) {
	var data []byte

	enc := codec.NewEncoderBytes(&data, &codec.CborHandle{})
	if err := enc.Encode(v); err != nil {
		return nil, ewrap.Wrap(err, "failed to marshal cbor")
	}

	return data, nil
}

// Unmarshal deserializes the given byte slice into the given value.
func (*CBORSerializer) Unmarshal(data []byte, v any) error {
	dec := codec.NewDecoderBytes(data, &codec.CborHandle{})
	if err := dec.Decode(v); err != nil {
		return ewrap.Wrap(err, "failed to unmarshal cbor")
	}

	return nil
}
