package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dronecmd/dronecmd-go/pkg/schema"
)

func testBundle() *schema.Bundle {
	return &schema.Bundle{
		Shared: &schema.SharedTypes{
			Version: "1",
			Enums: []schema.EnumDef{{
				Name: "FlipDirection",
				Values: []schema.EnumValue{
					{Name: "front", Value: 0},
					{Name: "back", Value: 1},
				},
			}},
		},
		Features: []*schema.FeatureDef{
			{
				Name: "ardrone3",
				ID:   1,
				Enums: []schema.EnumDef{{
					Name:        "FlyingState",
					Description: "Drone flying state.",
					Values: []schema.EnumValue{
						{Name: "landed", Value: 0},
						{Name: "takingoff", Value: 1},
						{Name: "hovering", Value: 2},
						{Name: "MAX", Value: 3},
					},
				}},
				Classes: []schema.ClassDef{
					{Name: "Piloting", ID: 0, Commands: []schema.CommandDef{
						{Name: "TakeOff", ID: 1, Description: "Ask the drone to take off."},
						{Name: "PCMD", ID: 2, Buffer: "nonack", Args: []schema.ArgDef{
							{Name: "flag", Type: "u8"},
							{Name: "roll", Type: "i8"},
							{Name: "pitch", Type: "i8"},
							{Name: "yaw", Type: "i8"},
							{Name: "gaz", Type: "i8"},
							{Name: "timestampAndSeqNum", Type: "u32"},
						}},
					}},
					{Name: "PilotingState", ID: 4, Commands: []schema.CommandDef{
						{Name: "FlyingStateChanged", ID: 1, Args: []schema.ArgDef{
							{Name: "state", Type: "enum", Enum: "FlyingState"},
						}},
						{Name: "AltitudeChanged", ID: 8, Deprecated: true, Args: []schema.ArgDef{
							{Name: "altitude", Type: "double"},
						}},
					}},
					{Name: "Animations", ID: 5, Commands: []schema.CommandDef{
						{Name: "Flip", ID: 0, Args: []schema.ArgDef{
							{Name: "direction", Type: "enum", Enum: "FlipDirection"},
						}},
					}},
				},
			},
			{
				Name:        "animation",
				ID:          137,
				Description: "Animation related commands.",
				Enums: []schema.EnumDef{
					{Name: "Type", Values: []schema.EnumValue{
						{Name: "NONE", Value: 0},
						{Name: "DRONIE", Value: 3},
						{Name: "HORIZONTAL_PANORAMA", Value: 4},
					}},
					{Name: "State", Values: []schema.EnumValue{
						{Name: "idle", Value: 0},
						{Name: "running", Value: 1},
					}},
					{Name: "SpiralConfigParam", Bitfield: true, Values: []schema.EnumValue{
						{Name: "speed", Value: 0},
						{Name: "radius_variation", Value: 1},
					}},
				},
				Commands: []schema.CommandDef{
					{Name: "availability", ID: 0, Args: []schema.ArgDef{
						{Name: "values", Type: "bitfield", Bits: "u64", Enum: "Type"},
					}},
					{Name: "state", ID: 1, Args: []schema.ArgDef{
						{Name: "type", Type: "enum", Enum: "Type"},
						{Name: "state", Type: "enum", Enum: "State"},
						{Name: "name", Type: "string"},
					}},
					{Name: "start_spiral", ID: 8, Args: []schema.ArgDef{
						{Name: "provided_params", Type: "bitfield", Bits: "u8", Enum: "SpiralConfigParam"},
						{Name: "speed", Type: "float"},
						{Name: "count", Type: "i64"},
					}},
				},
			},
		},
	}
}

func generateFeature(t *testing.T, name string) string {
	t.Helper()
	b := testBundle()
	g := NewGenerator(b, "features")
	output, err := g.GenerateFeature(b.Feature(name))
	if err != nil {
		t.Fatalf("GenerateFeature(%s) failed: %v", name, err)
	}
	return output
}

func TestGenerateHeader(t *testing.T) {
	output := generateFeature(t, "ardrone3")

	mustContain(t, output, "// Code generated by dronecmd-gen. DO NOT EDIT.")
	mustContain(t, output, "package features")
	mustContain(t, output, `"github.com/dronecmd/dronecmd-go/pkg/wire"`)
}

func TestGenerateFeatureID(t *testing.T) {
	mustContain(t, generateFeature(t, "ardrone3"), "const Ardrone3FeatureID uint8 = 1")

	output := generateFeature(t, "animation")
	mustContain(t, output, "const AnimationFeatureID uint8 = 137")
	mustContain(t, output, "identifies the animation feature: Animation related commands.")
}

func TestGenerateEnumType(t *testing.T) {
	output := generateFeature(t, "animation")

	mustContain(t, output, "type AnimationType int32")
	mustContain(t, output, "AnimationTypeNone AnimationType = 0")
	mustContain(t, output, "AnimationTypeDronie AnimationType = 3")
	mustContain(t, output, "AnimationTypeHorizontalPanorama AnimationType = 4")
	mustContain(t, output, "AnimationTypeUnknown AnimationType = AnimationType(enum.UnknownValue)")

	mustContain(t, output, "func (v AnimationType) String() string")
	mustContain(t, output, `return "HORIZONTAL_PANORAMA"`)
	mustContain(t, output, "return enum.UnknownName")
	mustContain(t, output, "case AnimationTypeNone, AnimationTypeDronie, AnimationTypeHorizontalPanorama:")
	mustContain(t, output, `return resolveEnum("animation.Type", int32(v))`)
}

func TestGenerateEnumSkipsMax(t *testing.T) {
	output := generateFeature(t, "ardrone3")

	mustContain(t, output, "Ardrone3FlyingStateHovering Ardrone3FlyingState = 2")
	mustContain(t, output, "// Ardrone3FlyingState is drone flying state.")
	mustNotContain(t, output, "Ardrone3FlyingStateMax")
	mustNotContain(t, output, `"MAX"`)
}

func TestGenerateBitfieldEnum(t *testing.T) {
	output := generateFeature(t, "animation")

	mustContain(t, output, "func (v AnimationSpiralConfigParam) Bit() uint64")
	mustNotContain(t, output, "func (v AnimationType) Bit() uint64")
}

func TestGenerateCommandIDs(t *testing.T) {
	output := generateFeature(t, "ardrone3")

	mustContain(t, output, "PilotingTakeOffID = model.CommandID{Feature: Ardrone3FeatureID, Class: 0, Command: 1}")
	mustContain(t, output, "PilotingStateFlyingStateChangedID = model.CommandID{Feature: Ardrone3FeatureID, Class: 4, Command: 1}")

	output = generateFeature(t, "animation")
	mustContain(t, output, "AnimationStartSpiralID = model.CommandID{Feature: AnimationFeatureID, Class: 0, Command: 8}")
}

func TestGenerateCommandStruct(t *testing.T) {
	output := generateFeature(t, "ardrone3")

	mustContain(t, output, "type PilotingPCMD struct {")
	mustContain(t, output, "Flag uint8")
	mustContain(t, output, "Roll int8")
	mustContain(t, output, "TimestampAndSeqNum uint32")
	mustContain(t, output, "type PilotingTakeOff struct{}")
	mustContain(t, output, "// PilotingTakeOff is ardrone3.Piloting.TakeOff: Ask the drone to take off.")
	mustContain(t, output, "// Deprecated: ardrone3.PilotingState.AltitudeChanged is kept for older peers.")
}

func TestGenerateCommandEncode(t *testing.T) {
	output := generateFeature(t, "ardrone3")

	mustContain(t, output, "func (c *PilotingPCMD) Command() *wire.Command {")
	mustContain(t, output, "wire.Uint8(c.Flag),")
	mustContain(t, output, "wire.Int8(c.Roll),")
	mustContain(t, output, "wire.Uint32(c.TimestampAndSeqNum),")
	mustContain(t, output, "wire.Float64(c.Altitude),")
	mustContain(t, output, "wire.EnumValue(c.Direction.Variant()),")
	mustContain(t, output, "return &wire.Command{ID: PilotingTakeOffID}")
}

func TestGenerateCommandDecode(t *testing.T) {
	output := generateFeature(t, "ardrone3")

	mustContain(t, output, "func DecodePilotingPCMD(cmd *wire.Command) (*PilotingPCMD, error) {")
	mustContain(t, output, "checkCommand(cmd, PilotingPCMDID, 6)")
	mustContain(t, output, "Flag: uint8(cmd.Args[0].Uint()),")
	mustContain(t, output, "Gaz: int8(cmd.Args[4].Int()),")
	mustContain(t, output, "State: enumArg[Ardrone3FlyingState](cmd.Args[0]),")
	mustContain(t, output, "Direction: enumArg[FlipDirection](cmd.Args[0]),")
	mustContain(t, output, "Altitude: cmd.Args[0].Float(),")
	mustContain(t, output, "return &PilotingTakeOff{}, nil")

	output = generateFeature(t, "animation")
	mustContain(t, output, "Values: cmd.Args[0].Uint(),")
	mustContain(t, output, "ProvidedParams: uint8(cmd.Args[0].Uint()),")
	mustContain(t, output, "Speed: float32(cmd.Args[1].Float()),")
	mustContain(t, output, "Count: cmd.Args[2].Int(),")
	mustContain(t, output, "Name: cmd.Args[2].Text(),")
	mustContain(t, output, "wire.Bits(uint64(c.ProvidedParams)),")
	mustContain(t, output, "wire.Str(c.Name),")
}

func TestGenerateListenerRegistration(t *testing.T) {
	output := generateFeature(t, "ardrone3")

	mustContain(t, output, "func OnPilotingPCMD(d *dispatch.Dispatcher, fn func(*PilotingPCMD) error) dispatch.Listener {")
	mustContain(t, output, "return d.Register(PilotingPCMDID, dispatch.ListenerFunc(func(cmd *wire.Command) error {")
	mustContain(t, output, "c, err := DecodePilotingPCMD(cmd)")
}

func TestCommandNameCollisions(t *testing.T) {
	b := testBundle()
	b.Features = append(b.Features, &schema.FeatureDef{
		Name: "minidrone",
		ID:   2,
		Classes: []schema.ClassDef{{Name: "Piloting", ID: 0, Commands: []schema.CommandDef{
			{Name: "TakeOff", ID: 1},
		}}},
	})
	g := NewGenerator(b, "features")

	ardrone3 := b.Feature("ardrone3")
	if got := g.CommandTypeName(&ardrone3.Classes[0].Commands[0]); got != "Ardrone3PilotingTakeOff" {
		t.Errorf("ardrone3 TakeOff: got %q", got)
	}
	mini := b.Feature("minidrone")
	if got := g.CommandTypeName(&mini.Classes[0].Commands[0]); got != "MinidronePilotingTakeOff" {
		t.Errorf("minidrone TakeOff: got %q", got)
	}
	if got := g.CommandTypeName(&ardrone3.Classes[0].Commands[1]); got != "PilotingPCMD" {
		t.Errorf("unique names keep the class prefix only: got %q", got)
	}

	// The animation "state" command would shadow the AnimationState enum.
	anim := b.Feature("animation")
	if got := g.CommandTypeName(&anim.Commands[1]); got != "AnimationStateCmd" {
		t.Errorf("animation state: got %q", got)
	}
}

func TestGenerateRejectsUnknownCollision(t *testing.T) {
	b := testBundle()
	b.Features[0].Enums[0].Values = append(b.Features[0].Enums[0].Values, schema.EnumValue{Name: "unknown", Value: 9})
	g := NewGenerator(b, "features")
	if _, err := g.GenerateFeature(b.Features[0]); err == nil {
		t.Error("expected error for a value named like the UNKNOWN sentinel")
	}
}

func TestGenerateShared(t *testing.T) {
	b := testBundle()
	output, err := NewGenerator(b, "features").GenerateShared()
	if err != nil {
		t.Fatalf("GenerateShared failed: %v", err)
	}

	mustContain(t, output, "type FlipDirection int32")
	mustContain(t, output, "FlipDirectionBack FlipDirection = 1")
	mustContain(t, output, `return resolveEnum("FlipDirection", int32(v))`)
	mustNotContain(t, output, "model.CommandID")
}

func TestRunWritesFiles(t *testing.T) {
	schemaDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	writeFile(t, filepath.Join(schemaDir, "shared.yaml"), `
version: "1"
enums:
  - name: FlipDirection
    values:
      - {name: front, value: 0}
      - {name: back, value: 1}
`)
	writeFile(t, filepath.Join(schemaDir, "animation.yaml"), `
name: animation
id: 137
enums:
  - name: Type
    values:
      - {name: NONE, value: 0}
      - {name: FLIP, value: 1}
commands:
  - name: cancel
    id: 2
  - name: start_flip
    id: 3
    args:
      - {name: direction, type: enum, enum: FlipDirection}
`)

	if err := run(schemaDir, outDir, "features"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, name := range []string{"shared_gen.go", "animation_gen.go"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		mustContain(t, string(data), "// Code generated by dronecmd-gen. DO NOT EDIT.")
	}
}

func TestGoName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"PCMD", "PCMD"},
		{"start_flip", "StartFlip"},
		{"moveBy", "MoveBy"},
		{"ardrone3", "Ardrone3"},
		{"timestampAndSeqNum", "TimestampAndSeqNum"},
		{"PilotingSettingsState", "PilotingSettingsState"},
		{"wifi-band", "WifiBand"},
	}
	for _, tt := range tests {
		if got := goName(tt.input); got != tt.want {
			t.Errorf("goName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValueName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"HORIZONTAL_PANORAMA", "HorizontalPanorama"},
		{"takingoff", "Takingoff"},
		{"off_button", "OffButton"},
		{"NONE", "None"},
		{"motion_detection", "MotionDetection"},
		{"2_4ghz", "24ghz"},
	}
	for _, tt := range tests {
		if got := valueName(tt.input); got != tt.want {
			t.Errorf("valueName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"ardrone3":   "ardrone3",
		"animation":  "animation",
		"ThermalCam": "thermal_cam",
	}
	for input, want := range tests {
		if got := fileName(input); got != want {
			t.Errorf("fileName(%q) = %q, want %q", input, got, want)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func mustContain(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("output does not contain %q\nOutput (first 3000 chars):\n%s", substr, truncate(output, 3000))
	}
}

func mustNotContain(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Errorf("output should not contain %q", substr)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
