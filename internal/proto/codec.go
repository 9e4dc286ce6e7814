package proto

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype under which messages travel
// (content-type application/grpc+cbor).
const CodecName = "cbor"

type cborCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func newCodec() (*cborCodec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("cbor enc mode: %w", err)
	}
	dec, err := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("cbor dec mode: %w", err)
	}
	return &cborCodec{enc: enc, dec: dec}, nil
}

func (c *cborCodec) Marshal(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c *cborCodec) Unmarshal(data []byte, v any) error {
	return c.dec.Unmarshal(data, v)
}

func (c *cborCodec) Name() string {
	return CodecName
}

func init() {
	c, err := newCodec()
	if err != nil {
		panic(err)
	}
	encoding.RegisterCodec(c)
}
