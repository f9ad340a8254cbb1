package schema

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const animationYAML = `
name: animation
id: 137
description: "Animation related commands"
enums:
  - name: Type
    values:
      - {name: NONE, value: 0}
      - {name: FLIP, value: 1}
      - {name: DRONIE, value: 3, description: "Dronie animation"}
  - name: SpiralConfigParam
    bitfield: true
    values:
      - {name: speed, value: 0}
      - {name: radius_variation, value: 1}
commands:
  - name: availability
    id: 0
    args:
      - {name: values, type: bitfield, bits: u64, enum: Type}
  - name: start_spiral
    id: 8
    args:
      - {name: provided_params, type: bitfield, bits: u8, enum: SpiralConfigParam}
      - {name: speed, type: float}
`

const pilotingYAML = `
name: ardrone3
id: 1
enums:
  - name: FlyingState
    values:
      - {name: landed, value: 0}
      - {name: hovering, value: 2}
      - {name: MAX, value: 3}
classes:
  - name: PilotingSettingsState
    id: 6
    commands:
      - name: MaxAltitudeChanged
        id: 0
        args:
          - {name: current, type: float}
          - {name: min, type: float}
          - {name: max, type: float}
        setting: {name: maxAltitude, current: current, min: min, max: max}
`

func TestParseFeatureDef_SingleClass(t *testing.T) {
	def, err := ParseFeatureDef([]byte(animationYAML))
	require.NoError(t, err)

	assert.Equal(t, "animation", def.Name)
	assert.Equal(t, uint8(137), def.ID)
	assert.False(t, def.HasClasses())
	require.Len(t, def.Enums, 2)
	assert.True(t, def.Enums[1].Bitfield)
	require.Len(t, def.Commands, 2)

	spiral := def.Commands[1]
	assert.Equal(t, uint16(8), spiral.ID)
	require.Len(t, spiral.Args, 2)
	assert.Equal(t, "bitfield", spiral.Args[0].Type)
	assert.Equal(t, "u8", spiral.Args[0].Bits)
	assert.Equal(t, "SpiralConfigParam", spiral.Args[0].Enum)

	typ := def.FindEnum("Type")
	require.NotNil(t, typ)
	assert.Equal(t, "Dronie animation", typ.Values[2].Description)
	assert.Nil(t, def.FindEnum("Missing"))
}

func TestParseFeatureDef_Classes(t *testing.T) {
	def, err := ParseFeatureDef([]byte(pilotingYAML))
	require.NoError(t, err)

	assert.True(t, def.HasClasses())
	require.Len(t, def.Classes, 1)
	cmd := def.Classes[0].Commands[0]
	require.NotNil(t, cmd.Setting)
	assert.Equal(t, "maxAltitude", cmd.Setting.Name)
	assert.Equal(t, "min", cmd.Setting.Min)
}

func TestParseFeatureDef_Errors(t *testing.T) {
	_, err := ParseFeatureDef([]byte("id: 3\n"))
	assert.Error(t, err)

	_, err = ParseFeatureDef([]byte("name: [unterminated\n"))
	assert.Error(t, err)
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"schema/ardrone3.yaml":  {Data: []byte(pilotingYAML)},
		"schema/animation.yaml": {Data: []byte(animationYAML)},
		"schema/shared.yaml": {Data: []byte(`
version: "1"
enums:
  - name: Direction
    type: u8
    values:
      - {name: left, value: 0}
      - {name: right, value: 1}
`)},
		"schema/README.md": {Data: []byte("ignored")},
	}

	b, err := LoadFS(fsys, "schema")
	require.NoError(t, err)

	require.Len(t, b.Features, 2)
	assert.Equal(t, "animation", b.Features[0].Name, "files load in lexical order")
	assert.Equal(t, "ardrone3", b.Features[1].Name)
	require.NotNil(t, b.Shared)
	assert.NotNil(t, b.Shared.FindEnum("Direction"))
	assert.NotNil(t, b.Feature("ardrone3"))
	assert.Nil(t, b.Feature("missing"))
}

func TestLoadFS_Empty(t *testing.T) {
	fsys := fstest.MapFS{"schema/notes.txt": {Data: []byte("x")}}
	_, err := LoadFS(fsys, "schema")
	assert.Error(t, err)
}
