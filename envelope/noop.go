package envelope

// NoOpCodec bypasses compression; it is always a candidate since tokens for
// small digests (the common case: a handful of nodes) rarely shrink under
// any general-purpose compressor once a one-byte algorithm tag is added.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return data, nil
}
