package features

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dronecmd/dronecmd-go/pkg/dispatch"
	"github.com/dronecmd/dronecmd-go/pkg/model"
	"github.com/dronecmd/dronecmd-go/pkg/settings"
	"github.com/dronecmd/dronecmd-go/pkg/wire"
)

func TestDefaultLoads(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)
	assert.Same(t, p, MustDefault())

	for _, id := range []uint8{CommonFeatureID, Ardrone3FeatureID, AnimationFeatureID} {
		_, ok := p.Table.Feature(id)
		assert.True(t, ok, "feature %d", id)
	}
	f, _ := p.Table.Feature(AnimationFeatureID)
	assert.False(t, f.HasClasses)

	_, ok := p.Enums.Enum("animation.Type")
	assert.True(t, ok)
	_, ok = p.Enums.Enum("FlipDirection")
	assert.True(t, ok)
}

func TestGeneratedIDsMatchTable(t *testing.T) {
	table := MustDefault().Table
	tests := []struct {
		id   model.CommandID
		name string
	}{
		{PilotingPCMDID, "ardrone3.Piloting.PCMD"},
		{PilotingStateFlyingStateChangedID, "ardrone3.PilotingState.FlyingStateChanged"},
		{SpeedSettingsStateHullProtectionChangedID, "ardrone3.SpeedSettingsState.HullProtectionChanged"},
		{CameraStateOrientationV2ID, "ardrone3.CameraState.OrientationV2"},
		{CommonStateWifiSignalChangedID, "common.CommonState.WifiSignalChanged"},
		{SettingsStateProductVersionChangedID, "common.SettingsState.ProductVersionChanged"},
		{AnimationStateCmdID, "animation.state"},
		{AnimationStartSpiralID, "animation.start_spiral"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := table.Get(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.name, desc.FullName())
		})
	}
}

func TestAnimationTypeResolve(t *testing.T) {
	enums := MustDefault().Enums

	assert.Equal(t, "DRONIE", enums.Resolve("animation.Type", 3).Name)
	assert.True(t, enums.Resolve("animation.Type", 42).IsUnknown())

	assert.Equal(t, "DRONIE", AnimationTypeDronie.String())
	assert.Equal(t, "Dronie animation", AnimationTypeDronie.Description())
	assert.True(t, AnimationTypeDollySlide.Known())
	assert.Equal(t, AnimationType(9), AnimationTypeDollySlide)

	assert.Equal(t, "UNKNOWN", AnimationType(42).String())
	assert.False(t, AnimationType(42).Known())
	assert.True(t, AnimationTypeUnknown.Variant().IsUnknown())
	assert.Equal(t, "Dummy value for all unknown cases", AnimationTypeUnknown.Description())
}

func TestPCMDRoundTrip(t *testing.T) {
	codec := MustDefault().Codec
	in := &PilotingPCMD{
		Flag:               1,
		Roll:               -10,
		Pitch:              20,
		Yaw:                0,
		Gaz:                -100,
		TimestampAndSeqNum: 0x01020304,
	}

	payload, err := codec.Encode(in.Command())
	require.NoError(t, err)
	assert.Equal(t, []byte{
		1, 0, 2, 0, // ardrone3.Piloting.PCMD
		1, 0xf6, 20, 0, 0x9c,
		0x04, 0x03, 0x02, 0x01,
	}, payload)

	cmd, err := codec.Decode(payload)
	require.NoError(t, err)
	out, err := DecodePilotingPCMD(cmd)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	desc, err := MustDefault().Table.Get(PilotingPCMDID)
	require.NoError(t, err)
	size, variable := desc.FixedSize()
	assert.Equal(t, 9, size)
	assert.False(t, variable)
	assert.Equal(t, model.BufferNonAck, desc.Buffer)

	_, err = codec.Decode(payload[:4+7])
	assert.True(t, errors.Is(err, wire.ErrTruncatedFrame), "got %v", err)
}

func TestEnumArgumentRoundTrip(t *testing.T) {
	codec := MustDefault().Codec

	payload, err := codec.Encode((&PilotingStateFlyingStateChanged{State: Ardrone3FlyingStateHovering}).Command())
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 4, 1, 0, 2, 0, 0, 0}, payload)

	cmd, err := codec.Decode(payload)
	require.NoError(t, err)
	out, err := DecodePilotingStateFlyingStateChanged(cmd)
	require.NoError(t, err)
	assert.Equal(t, Ardrone3FlyingStateHovering, out.State)
}

func TestUndeclaredEnumValueDecodesToUnknown(t *testing.T) {
	codec := MustDefault().Codec

	for _, raw := range []byte{42, 9} { // 9 is the MAX marker
		cmd, err := codec.Decode([]byte{1, 4, 1, 0, raw, 0, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, int64(raw), cmd.Args[0].Int())

		out, err := DecodePilotingStateFlyingStateChanged(cmd)
		require.NoError(t, err)
		assert.Equal(t, Ardrone3FlyingStateUnknown, out.State)
		assert.Equal(t, "UNKNOWN", out.State.String())
	}
}

func TestEncodeUnknownEnumFails(t *testing.T) {
	_, err := MustDefault().Codec.Encode((&PilotingStateFlyingStateChanged{State: Ardrone3FlyingStateUnknown}).Command())
	assert.True(t, errors.Is(err, wire.ErrInvalidEnumForEncode), "got %v", err)

	_, err = MustDefault().Codec.Encode((&AnimationsFlip{Direction: FlipDirection(7)}).Command())
	assert.True(t, errors.Is(err, wire.ErrInvalidEnumForEncode), "got %v", err)
}

func TestBitfieldArgument(t *testing.T) {
	codec := MustDefault().Codec
	in := &AnimationStartSpiral{
		ProvidedParams: uint8(AnimationSpiralConfigParamSpeed.Bit() | AnimationSpiralConfigParamPlayMode.Bit()),
		Speed:          2.5,
		PlayMode:       AnimationModeOnceThenMirrored,
	}
	assert.Equal(t, uint8(0x11), in.ProvidedParams)

	payload, err := codec.Encode(in.Command())
	require.NoError(t, err)
	assert.Equal(t, []byte{137, 8, 0, 0x11}, payload[:4], "single-class header carries no class byte")

	cmd, err := codec.Decode(payload)
	require.NoError(t, err)
	assert.True(t, cmd.Args[0].Has(AnimationSpiralConfigParamSpeed.Variant()))
	assert.False(t, cmd.Args[0].Has(AnimationSpiralConfigParamRadiusVariation.Variant()))

	out, err := DecodeAnimationStartSpiral(cmd)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	assert.Equal(t, uint64(0), AnimationSpiralConfigParamUnknown.Bit())
}

func TestStringArgument(t *testing.T) {
	payload, err := MustDefault().Codec.Encode((&SettingsProductName{Name: "Bebop"}).Command())
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0, 2, 2, 0}, "Bebop\x00"...), payload)
}

func TestOnRegistersTypedListener(t *testing.T) {
	p := MustDefault()
	d := dispatch.New(dispatch.Config{})

	var got *PilotingPCMD
	prev := OnPilotingPCMD(d, func(c *PilotingPCMD) error {
		got = c
		return nil
	})
	assert.Nil(t, prev)

	payload, err := p.Codec.Encode((&PilotingPCMD{Flag: 1, Pitch: 30}).Command())
	require.NoError(t, err)
	cmd, err := p.Codec.Decode(payload)
	require.NoError(t, err)

	result, err := d.Dispatch(cmd)
	require.NoError(t, err)
	assert.Equal(t, dispatch.ResultDelivered, result)
	require.NotNil(t, got)
	assert.Equal(t, int8(30), got.Pitch)

	OnPilotingPCMD(d, func(*PilotingPCMD) error { return errors.New("boom") })
	result, err = d.Dispatch(cmd)
	assert.Equal(t, dispatch.ResultListenerFailed, result)
	assert.ErrorIs(t, err, dispatch.ErrListenerFailure)
}

func TestSettingNotificationFeedsAggregate(t *testing.T) {
	p := MustDefault()
	d := dispatch.New(dispatch.Config{})
	agg := settings.NewAggregate()
	d.SetSettingsSink(&settings.Sink{Aggregate: agg})

	payload, err := p.Codec.Encode((&PilotingSettingsStateMaxAltitudeChanged{Current: 30, Min: 0.5, Max: 150}).Command())
	require.NoError(t, err)
	cmd, err := p.Codec.Decode(payload)
	require.NoError(t, err)

	result, err := d.Dispatch(cmd)
	require.NoError(t, err)
	assert.Equal(t, dispatch.ResultDelivered, result)

	cur, ok := agg.Current("maxAltitude")
	require.True(t, ok)
	assert.Equal(t, 30.0, cur.Float())
	r, ok := agg.Range("maxAltitude")
	require.True(t, ok)
	assert.Equal(t, 0.5, r.Min.Float())
	assert.Equal(t, 150.0, r.Max.Float())

	_, ok = agg.Current("maxTilt")
	assert.False(t, ok)
}

func TestDecodeWrongCommand(t *testing.T) {
	_, err := DecodePilotingPCMD((&PilotingTakeOff{}).Command())
	assert.ErrorIs(t, err, wire.ErrArgumentMismatch)

	_, err = DecodePilotingPCMD(&wire.Command{ID: PilotingPCMDID})
	assert.ErrorIs(t, err, wire.ErrArgumentMismatch)

	_, err = DecodePilotingPCMD(nil)
	assert.ErrorIs(t, err, wire.ErrArgumentMismatch)
}

func TestLoadRejectsEmptySchema(t *testing.T) {
	_, err := Load(fstest.MapFS{"README.md": {Data: []byte("x")}}, ".")
	assert.Error(t, err)
}
