package debugui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/powertris/debugui"
	"github.com/plus3/powertris/tetris"
)

type inner struct {
	Count int
}

type sample struct {
	Name    string
	Ratio   float64
	Wait    time.Duration
	Inner   inner
	Ptr     *inner
	Missing *inner
	Items   []int
	Lookup  map[string]int
	hidden  int
}

func findField(t *testing.T, fields []debugui.FieldValue, name string) debugui.FieldValue {
	t.Helper()
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	require.Failf(t, "field not found", "%s", name)
	return debugui.FieldValue{}
}

func TestFields(t *testing.T) {
	v := sample{
		Name:   "demo",
		Ratio:  0.25,
		Wait:   1500 * time.Millisecond,
		Inner:  inner{Count: 3},
		Ptr:    &inner{Count: 7},
		Items:  []int{1, 2},
		Lookup: map[string]int{"a": 1},
		hidden: 9,
	}

	fields := debugui.Fields(v)
	require.Len(t, fields, 8)

	assert.Equal(t, "demo", findField(t, fields, "Name").Value)
	assert.Equal(t, "0.250", findField(t, fields, "Ratio").Value)
	assert.Equal(t, "1.5s", findField(t, fields, "Wait").Value)
	assert.Equal(t, []debugui.FieldValue{{Name: "Count", Value: "3"}}, findField(t, fields, "Inner").Children)
	assert.Equal(t, []debugui.FieldValue{{Name: "Count", Value: "7"}}, findField(t, fields, "Ptr").Children)
	assert.Equal(t, "nil", findField(t, fields, "Missing").Value)
	assert.Equal(t, "[2 items]", findField(t, fields, "Items").Value)
	assert.Equal(t, "map[1 items]", findField(t, fields, "Lookup").Value)

	t.Run("pointer and non struct values", func(t *testing.T) {
		assert.Len(t, debugui.Fields(&v), 8)
		assert.Nil(t, debugui.Fields((*sample)(nil)))
		assert.Nil(t, debugui.Fields(42))
	})

	t.Run("declaration order", func(t *testing.T) {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			names = append(names, f.Name)
		}
		assert.Equal(t, []string{"Name", "Ratio", "Wait", "Inner", "Ptr", "Missing", "Items", "Lookup"}, names)
	})
}

func TestFieldsEngineConfig(t *testing.T) {
	fields := debugui.Fields(tetris.DefaultConfig())

	assert.Equal(t, "10", findField(t, fields, "Width").Value)
	assert.Equal(t, "20", findField(t, fields, "Height").Value)
	assert.Equal(t, "0.100", findField(t, fields, "PowerChance").Value)
	assert.Equal(t, "500ms", findField(t, fields, "BaseFallInterval").Value)
	assert.Equal(t, "map[3 items]", findField(t, fields, "Powers").Value)
}

func TestPerformanceStats(t *testing.T) {
	ps := debugui.NewPerformanceStats(4)
	assert.Zero(t, ps.AverageFrameTime())

	for range 4 {
		ps.Record(0.016)
	}
	assert.InDelta(t, 16.0, ps.AverageFrameTime(), 0.001)

	ps.Record(0.032)
	assert.InDelta(t, 20.0, ps.AverageFrameTime(), 0.001)
}
