package envelope_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/satisfactorytools/graphtoken/envelope"
	"github.com/satisfactorytools/graphtoken/errs"
	"github.com/stretchr/testify/require"
)

func TestWrapUnwrap_RoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		{0x01},
		[]byte("small digest"),
		bytes(200, 'a'),
		bytes(4096, 0),
	}

	for _, digest := range cases {
		token := envelope.Wrap(digest)
		require.NotContains(t, token, "+")
		require.NotContains(t, token, "/")
		require.NotContains(t, token, "=")

		got, err := envelope.Unwrap(token)
		require.NoError(t, err)
		require.Equal(t, digest, got)
	}
}

func TestWrap_PicksSmallestCandidate(t *testing.T) {
	// A long run of a single byte compresses extremely well under every
	// real codec; the wrapped token must be far shorter than a raw
	// base64 encoding of the same input would be.
	digest := bytes(4096, 'x')
	token := envelope.Wrap(digest)

	rawLen := (len(digest) + 1) * 4 / 3
	require.Less(t, len(token), rawLen/2)
}

func TestUnwrap_RejectsUnknownAlgorithm(t *testing.T) {
	// 0xFF is not a registered algorithm tag.
	token := base64.RawURLEncoding.EncodeToString([]byte{0xFF, 1, 2, 3})
	_, err := envelope.Unwrap(token)
	require.ErrorIs(t, err, errs.ErrUnknownAlgorithm)
}

func TestWrap_WithAlgorithmsRestrictsCandidates(t *testing.T) {
	digest := bytes(4096, 'x')

	token := envelope.Wrap(digest, envelope.WithAlgorithms(envelope.AlgorithmNone))
	raw, err := envelope.Unwrap(token)
	require.NoError(t, err)
	require.Equal(t, digest, raw)

	// Restricting to AlgorithmNone must skip every real compressor, so the
	// token is never shorter than the unrestricted one, which may use one.
	unrestricted := envelope.Wrap(digest)
	require.GreaterOrEqual(t, len(token), len(unrestricted))
}

func TestUnwrap_RejectsEmptyToken(t *testing.T) {
	_, err := envelope.Unwrap("")
	require.Error(t, err)
}

func TestUnwrap_RejectsInvalidBase64(t *testing.T) {
	_, err := envelope.Unwrap("not base64!!!")
	require.Error(t, err)
}

func bytes(n int, b byte) []byte {
	return []byte(strings.Repeat(string(b), n))
}
