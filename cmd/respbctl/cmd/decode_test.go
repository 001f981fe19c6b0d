package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRESPArrayParsesBulkStrings(t *testing.T) {
	data := []byte("*3\r\n$3\r\nSET\r\n$3\r\nfoo\r\n$3\r\nbar\r\n")

	parts, err := decodeRESPArray(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"SET", "foo", "bar"}, parts)
}

func TestDecodeRESPArrayRejectsNonArray(t *testing.T) {
	data := []byte("+OK\r\n")

	_, err := decodeRESPArray(data)
	assert.Error(t, err)
}

func TestEmbedPassthroughFallsBackOnParseError(t *testing.T) {
	doc, err := embedPassthrough("{}", []byte("+OK\r\n"))
	require.NoError(t, err)
	assert.Contains(t, doc, "resp_parse_error")
	assert.Contains(t, doc, "resp_data")
}

func TestEmbedPassthroughDecodesArray(t *testing.T) {
	doc, err := embedPassthrough("{}", []byte("*1\r\n$4\r\nPING\r\n"))
	require.NoError(t, err)
	assert.Contains(t, doc, `"resp_command":["PING"]`)
}
