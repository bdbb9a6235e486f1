package convert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_EmptyData(t *testing.T) {
	c := NewConverter()
	_, err := c.Convert(nil, "report.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty content")
}

func TestConvert_UnsupportedExtension(t *testing.T) {
	c := NewConverter()
	_, err := c.Convert([]byte{0x00, 0x01, 0x02}, "firmware.bin")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestConvert_PlainText(t *testing.T) {
	c := NewConverter()
	text, err := c.Convert([]byte("  meeting notes\nsecond line  \n"), "notes.txt")
	require.NoError(t, err)
	assert.Contains(t, text, "meeting notes")
	assert.Contains(t, text, "second line")
}

func TestTextualExtension(t *testing.T) {
	assert.True(t, textualExtension(".txt"))
	assert.True(t, textualExtension(".CSV"))
	assert.False(t, textualExtension(".exe"))
	assert.False(t, textualExtension(""))
}
