package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require := require.New(t)

	require.Equal(binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(binary.BigEndian, GetBigEndianEngine())
	require.Equal(GetBigEndianEngine(), GetEngine(true))
	require.Equal(GetLittleEndianEngine(), GetEngine(false))
}

func TestIsBigEndian(t *testing.T) {
	require.True(t, IsBigEndian(GetBigEndianEngine()))
	require.False(t, IsBigEndian(GetLittleEndianEngine()))
}

func TestEngine_AppendAndPut(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		want   []byte
	}{
		{"little", GetLittleEndianEngine(), []byte{0x04, 0x03, 0x02, 0x01}},
		{"big", GetBigEndianEngine(), []byte{0x01, 0x02, 0x03, 0x04}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appended := tt.engine.AppendUint32(nil, 0x01020304)
			require.Equal(t, tt.want, appended)

			put := make([]byte, 4)
			tt.engine.PutUint32(put, 0x01020304)
			require.Equal(t, tt.want, put)
			require.Equal(t, uint32(0x01020304), tt.engine.Uint32(put))
		})
	}
}
