package gamedata_test

import (
	"testing"

	"github.com/satisfactorytools/graphtoken/gamedata"
	"github.com/satisfactorytools/graphtoken/graph"
	"github.com/stretchr/testify/require"
)

func TestTable_ValidRecipe(t *testing.T) {
	tbl := gamedata.Table{}

	require.True(t, tbl.Valid(0))
	require.False(t, tbl.Valid(999))
	require.Equal(t, []graph.ItemKind{gamedata.IronOre}, tbl.Inputs(0))
	require.Equal(t, []graph.ItemKind{gamedata.IronIngot}, tbl.Outputs(0))
}

func TestTable_AluminumChain(t *testing.T) {
	tbl := gamedata.Table{}

	require.Equal(t, []graph.ItemKind{gamedata.Bauxite, gamedata.Water}, tbl.Inputs(2))
	require.Equal(t, []graph.ItemKind{gamedata.AluminaSoln, gamedata.Silica}, tbl.Outputs(2))
	require.Equal(t, []graph.ItemKind{gamedata.AluminaSoln, gamedata.Coal}, tbl.Inputs(3))
	require.Equal(t, []graph.ItemKind{gamedata.AluminumScrap, gamedata.Silica}, tbl.Inputs(4))
	require.Equal(t, []graph.ItemKind{gamedata.AluminumIngot}, tbl.Outputs(4))
}

func TestTable_SourceItem(t *testing.T) {
	tbl := gamedata.Table{}

	kind, ok := tbl.Kind(0)
	require.True(t, ok)
	require.Equal(t, gamedata.IronOre, kind)

	_, ok = tbl.Kind(99)
	require.False(t, ok)
}
