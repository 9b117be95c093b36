package lgd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsZstd(t *testing.T) {
	assert.True(t, IsZstd([]byte{0x28, 0xB5, 0x2F, 0xFD, 0x00}))
	assert.False(t, IsZstd([]byte{0x28, 0xB5}))
	assert.False(t, IsZstd([]byte("<logo data file")))
}

func TestOpen(t *testing.T) {
	bs := fileBuilder{
		Identifier: "<logo data file ver0.1>",
		Fields:     sizedFields(1, 1),
		Records:    repeatRecord(opaqueWhite, 1),
		Extension:  true,
		ServiceID:  211,
	}.Build()

	encoder, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := encoder.EncodeAll(bs, nil)
	require.NoError(t, encoder.Close())

	dir := t.TempDir()
	inputs := map[string][]byte{
		"plain.lgd":      bs,
		"packed.lgd.zst": compressed,
	}
	for name, content := range inputs {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, content, 0644))

		file, err := Open(path)
		require.NoError(t, err, name)
		info, err := Decode(file.Reader)
		require.NoError(t, err, name)
		assert.Equal(t, "<logo data file ver0.1>", info.FileHeader.Identifier, name)
		assert.Equal(t, int32(211), info.ServiceID().Value, name)
		assert.NoError(t, file.Close(), name)
	}
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.lgd"))
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}
