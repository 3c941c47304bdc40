package transport_test

import (
	"encoding/json"
	"testing"

	"github.com/satisfactorytools/graphtoken/gamedata"
	"github.com/satisfactorytools/graphtoken/graphcodec"
	"github.com/satisfactorytools/graphtoken/transport"
	"github.com/stretchr/testify/require"
)

var tables = graphcodec.Tables{Recipes: gamedata.Table{}, Items: gamedata.Table{}}

const singleRecipeDoc = `{
	"version": 1,
	"state": {
		"graph": {
			"nodes": {
				"abc": {"type": "recipe", "pos": {"x": 0, "y": 0}, "recipe": 0, "buildingsCount": 1, "overclock": 1.0}
			},
			"edges": []
		}
	}
}`

func TestEncodeDecode_SingleRecipeRoundTrip(t *testing.T) {
	digest, err := transport.Encode([]byte(singleRecipeDoc), tables)
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	out, err := transport.Decode(digest, tables)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))

	state := doc["state"].(map[string]any)
	g := state["graph"].(map[string]any)
	nodes := g["nodes"].(map[string]any)
	require.Len(t, nodes, 1)

	for _, v := range nodes {
		node := v.(map[string]any)
		require.Equal(t, "recipe", node["type"])
		require.Equal(t, float64(0), node["recipe"])
		require.Equal(t, float64(1), node["buildingsCount"])
		require.Equal(t, 1.0, node["overclock"])
	}
}

func TestEncodeDecode_TwoNodesWithEdge(t *testing.T) {
	doc := `{
		"version": 1,
		"state": {
			"graph": {
				"nodes": {
					"src": {"type": "source", "pos": {"x": 0, "y": 0}, "item": 0, "rate": 60},
					"dst": {"type": "recipe", "pos": {"x": 25, "y": 0}, "recipe": 0, "buildingsCount": 1, "overclock": 1.0}
				},
				"edges": [
					{"source": {"nodeId": "src", "handleId": 0}, "target": {"nodeId": "dst", "handleId": 0}}
				]
			}
		}
	}`

	digest, err := transport.Encode([]byte(doc), tables)
	require.NoError(t, err)

	out, err := transport.Decode(digest, tables)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(out, &back))
	state := back["state"].(map[string]any)
	g := state["graph"].(map[string]any)
	require.Len(t, g["nodes"].(map[string]any), 2)
	require.Len(t, g["edges"].([]any), 1)
}

func TestEncode_RejectsOverclockOutOfRange(t *testing.T) {
	doc := `{
		"version": 1,
		"state": {
			"graph": {
				"nodes": {
					"a": {"type": "recipe", "pos": {"x": 0, "y": 0}, "recipe": 0, "buildingsCount": 1, "overclock": 9.9}
				},
				"edges": []
			}
		}
	}`

	_, err := transport.Encode([]byte(doc), tables)
	require.Error(t, err)
}

func TestEncode_RejectsMisalignedPosition(t *testing.T) {
	doc := `{
		"version": 1,
		"state": {
			"graph": {
				"nodes": {
					"a": {"type": "recipe", "pos": {"x": 1, "y": 0}, "recipe": 0, "buildingsCount": 1, "overclock": 1.0}
				},
				"edges": []
			}
		}
	}`

	_, err := transport.Encode([]byte(doc), tables)
	require.Error(t, err)
}

func TestEncode_RejectsUnknownEdgeNodeID(t *testing.T) {
	doc := `{
		"version": 1,
		"state": {
			"graph": {
				"nodes": {
					"a": {"type": "recipe", "pos": {"x": 0, "y": 0}, "recipe": 0, "buildingsCount": 1, "overclock": 1.0}
				},
				"edges": [
					{"source": {"nodeId": "missing", "handleId": 0}, "target": {"nodeId": "a", "handleId": 0}}
				]
			}
		}
	}`

	_, err := transport.Encode([]byte(doc), tables)
	require.Error(t, err)
}

func TestEncode_RejectsUnknownNodeType(t *testing.T) {
	doc := `{
		"version": 1,
		"state": {
			"graph": {
				"nodes": {
					"a": {"type": "conveyor", "pos": {"x": 0, "y": 0}}
				},
				"edges": []
			}
		}
	}`

	_, err := transport.Encode([]byte(doc), tables)
	require.Error(t, err)
}

func TestEncode_RejectsMalformedJSON(t *testing.T) {
	_, err := transport.Encode([]byte("not json"), tables)
	require.Error(t, err)
}
