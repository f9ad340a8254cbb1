package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, doc string) *FeatureDef {
	t.Helper()
	def, err := ParseFeatureDef([]byte(doc))
	require.NoError(t, err)
	return def
}

func TestValidate_Valid(t *testing.T) {
	b := &Bundle{Features: []*FeatureDef{
		mustParse(t, animationYAML),
		mustParse(t, pilotingYAML),
	}}
	assert.NoError(t, Validate(b))
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "duplicate enum value",
			doc: `
name: f
id: 1
enums:
  - name: E
    values:
      - {name: a, value: 1}
      - {name: b, value: 1}
commands: []
`,
			want: "reuses value 1",
		},
		{
			name: "reserved unknown value",
			doc: `
name: f
id: 1
enums:
  - name: E
    values:
      - {name: a, value: -2147483648}
`,
			want: "reserved",
		},
		{
			name: "value wider than enum type",
			doc: `
name: f
id: 1
enums:
  - name: E
    type: u8
    values:
      - {name: a, value: 1}
      - {name: b, value: 300}
`,
			want: "value 300 out of range for u8",
		},
		{
			name: "negative value in unsigned enum",
			doc: `
name: f
id: 1
enums:
  - name: E
    type: u16
    values:
      - {name: a, value: -1}
`,
			want: "value -1 out of range for u16",
		},
		{
			name: "duplicate command id",
			doc: `
name: f
id: 1
commands:
  - {name: a, id: 2}
  - {name: b, id: 2}
`,
			want: "reuses id 2",
		},
		{
			name: "duplicate class id",
			doc: `
name: f
id: 1
classes:
  - {name: A, id: 0}
  - {name: B, id: 0}
`,
			want: "class B reuses id 0",
		},
		{
			name: "unknown arg type",
			doc: `
name: f
id: 1
commands:
  - name: a
    id: 0
    args:
      - {name: x, type: int128}
`,
			want: "unknown type",
		},
		{
			name: "dangling enum",
			doc: `
name: f
id: 1
commands:
  - name: a
    id: 0
    args:
      - {name: x, type: enum, enum: Nope}
`,
			want: "unknown enum Nope",
		},
		{
			name: "bad bitfield width",
			doc: `
name: f
id: 1
commands:
  - name: a
    id: 0
    args:
      - {name: x, type: bitfield, bits: i8}
`,
			want: "unsupported bitfield width",
		},
		{
			name: "setting role not an arg",
			doc: `
name: f
id: 1
commands:
  - name: a
    id: 0
    args:
      - {name: x, type: float}
    setting: {name: s, current: y}
`,
			want: "unknown argument y",
		},
		{
			name: "setting min without max",
			doc: `
name: f
id: 1
commands:
  - name: a
    id: 0
    args:
      - {name: x, type: float}
      - {name: lo, type: float}
    setting: {name: s, min: lo}
`,
			want: "both min and max",
		},
		{
			name: "unknown buffer",
			doc: `
name: f
id: 1
commands:
  - {name: a, id: 0, buffer: turbo}
`,
			want: "unknown buffer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&Bundle{Features: []*FeatureDef{mustParse(t, tt.doc)}})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSchema)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_DuplicateFeatureID(t *testing.T) {
	a := mustParse(t, "name: a\nid: 3\n")
	b := mustParse(t, "name: b\nid: 3\n")
	err := Validate(&Bundle{Features: []*FeatureDef{a, b}})
	require.ErrorIs(t, err, ErrInvalidSchema)
	assert.Contains(t, err.Error(), "reuses id 3")
}

func TestValidate_MaxIsMetadata(t *testing.T) {
	// MAX may share a value with a real variant without tripping the duplicate check.
	doc := `
name: f
id: 1
enums:
  - name: E
    values:
      - {name: a, value: 0}
      - {name: b, value: 1}
      - {name: MAX, value: 1}
`
	assert.NoError(t, Validate(&Bundle{Features: []*FeatureDef{mustParse(t, doc)}}))
}

func TestValidate_SharedEnumReference(t *testing.T) {
	doc := `
name: f
id: 1
commands:
  - name: a
    id: 0
    args:
      - {name: dir, type: enum, enum: Direction}
`
	shared := &SharedTypes{Enums: []EnumDef{{
		Name:   "Direction",
		Values: []EnumValue{{Name: "left", Value: 0}},
	}}}
	assert.NoError(t, Validate(&Bundle{Features: []*FeatureDef{mustParse(t, doc)}, Shared: shared}))
}
