package attr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const yamlTree = `
desktop:
  value: {a: 1, b: 2, inner: {x: 1, y: 2}}
tablet:
  value: {b: 3, inner: {y: 4}, list: [{z: 1}]}
`

func decodeTree(t *testing.T) Tree[any] {
	t.Helper()
	var tree Tree[any]
	require.NoError(t, yaml.Unmarshal([]byte(yamlTree), &tree))
	return tree
}

func TestMergedModeWithDecodedMaps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "respstyle.attr")
	defer teardown()
	//
	tree := decodeTree(t)
	v := ResolveValue(tree, Tablet, Value, Merged, DefaultOrder())
	m, ok := v.(map[string]any)
	require.True(t, ok, "expected merged value to be map[string]any, is %T", v)
	assert.Equal(t, 1, m["a"])
	assert.Equal(t, 3, m["b"])
	inner, ok := m["inner"].(map[string]any)
	require.True(t, ok, "expected nested map to be merged, is %T", m["inner"])
	assert.Equal(t, map[string]any{"x": 1, "y": 4}, inner)
}

type props map[string]string

func TestDeepMergeNamedMapTypes(t *testing.T) {
	merged := DeepMerge(props{"a": "1", "b": "2"}, map[State]any{"b": "3"})
	assert.Equal(t, map[string]any{"a": "1", "b": "3"}, merged)
	assert.Equal(t, "x", DeepMerge(props{"a": "1"}, "x"))
}

func TestNormalizeTree(t *testing.T) {
	tree := NormalizeTree(decodeTree(t))
	v, _ := tree.Get(Tablet, Value)
	m, ok := v.(map[string]any)
	require.True(t, ok, "expected leaf to be map[string]any, is %T", v)
	assert.IsType(t, map[string]any{}, m["inner"])
	list, ok := m["list"].([]any)
	require.True(t, ok)
	assert.IsType(t, map[string]any{}, list[0])
	assert.Nil(t, NormalizeTree(nil))
	assert.Equal(t, "red", Normalize("red"))
	_, ok = StringMap(map[int]string{1: "a"})
	assert.False(t, ok)
}
