package fields_test

import (
	"testing"

	"github.com/satisfactorytools/graphtoken/bitio"
	"github.com/satisfactorytools/graphtoken/fields"
	"github.com/stretchr/testify/require"
)

func TestOverclock_RoundTrip(t *testing.T) {
	cases := []uint32{
		1_000_000, // 1.0, the single-bit common case
		500_000,   // 0.5
		1_500_000, // 1.5
		2_000_000, // 2.0
		2_500_000, // 2.5
		1_333_333, // 1.333333, long form
		2_499_999, // 2.499999, long form
		fields.OverclockMicroMin,
		fields.OverclockMicroMax,
	}

	for _, micro := range cases {
		w := bitio.NewWriterSize(8)
		fields.WriteOverclock(w, micro)
		w.FinishByte()

		r := bitio.NewReader(w.Bytes())
		got, err := fields.ReadOverclock(r)
		require.NoError(t, err)
		require.Equal(t, micro, got, "micro=%d", micro)
	}
}

func TestOverclock_PanicsOutOfRange(t *testing.T) {
	w := bitio.NewWriterSize(8)
	require.Panics(t, func() { fields.WriteOverclock(w, fields.OverclockMicroMin-1) })
	require.Panics(t, func() { fields.WriteOverclock(w, fields.OverclockMicroMax+1) })
}

func TestBuildingCount_RoundTrip(t *testing.T) {
	cases := []uint32{1, 12, 13, 524, 525, 1000, fields.MaxBuildingCount}

	for _, v := range cases {
		w := bitio.NewWriterSize(8)
		fields.WriteBuildingCount(w, v)
		w.FinishByte()

		r := bitio.NewReader(w.Bytes())
		got, err := fields.ReadBuildingCount(r)
		require.NoError(t, err)
		require.Equal(t, v, got, "v=%d", v)
	}
}

func TestBuildingCount_PanicsOnZeroOrOutOfRange(t *testing.T) {
	w := bitio.NewWriterSize(8)
	require.Panics(t, func() { fields.WriteBuildingCount(w, 0) })
	require.Panics(t, func() { fields.WriteBuildingCount(w, fields.MaxBuildingCount+1) })
}

func TestSourceRate_RoundTrip(t *testing.T) {
	cases := []uint32{30, 60, 120, 240, 300, 480, 600, 960, 1200, 1920, 2400, 4800, 15330, 131071}

	for _, v := range cases {
		w := bitio.NewWriterSize(8)
		fields.WriteSourceRate(w, v)
		w.FinishByte()

		r := bitio.NewReader(w.Bytes())
		got, err := fields.ReadSourceRate(r)
		require.NoError(t, err)
		require.Equal(t, v, got, "v=%d", v)
	}
}

func TestSourceRate_PanicsOutOfRange(t *testing.T) {
	w := bitio.NewWriterSize(8)
	require.Panics(t, func() { fields.WriteSourceRate(w, fields.MaxSourceRate+1) })
}

func TestRecipeID_RoundTrip(t *testing.T) {
	for _, id := range []uint32{0, 1, 511} {
		w := bitio.NewWriterSize(8)
		fields.WriteRecipeID(w, id)
		w.FinishByte()

		r := bitio.NewReader(w.Bytes())
		got, err := fields.ReadRecipeID(r)
		require.NoError(t, err)
		require.Equal(t, id, got)
	}
}

func TestSourceItem_RoundTrip(t *testing.T) {
	for _, id := range []uint32{0, 1, 15} {
		w := bitio.NewWriterSize(8)
		fields.WriteSourceItem(w, id)
		w.FinishByte()

		r := bitio.NewReader(w.Bytes())
		got, err := fields.ReadSourceItem(r)
		require.NoError(t, err)
		require.Equal(t, id, got)
	}
}
