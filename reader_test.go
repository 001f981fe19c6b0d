package respb_test

import (
	"testing"

	"github.com/maxpert/respb-protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOneSimpleGet(t *testing.T) {
	// opcode=0x0000 mux_id=0 key="mykey"
	input := []byte{
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x05, 'm', 'y', 'k', 'e', 'y',
	}

	cmd, newOffset, err := respb.ParseOne(input, 0)
	require.NoError(t, err)
	assert.Equal(t, 11, newOffset)
	assert.Equal(t, respb.OpGet, cmd.Opcode)
	assert.Equal(t, uint16(0), cmd.MuxID)
	require.Equal(t, 1, cmd.Argc())
	assert.Equal(t, "mykey", string(cmd.Args[0]))
}

func TestParseOneSetWithFlagsAndExpiry(t *testing.T) {
	input := []byte{
		0x00, 0x01, 0x00, 0x00,
		0x00, 0x05, 'm', 'y', 'k', 'e', 'y',
		0x00, 0x00, 0x00, 0x07, 'm', 'y', 'v', 'a', 'l', 'u', 'e',
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	cmd, newOffset, err := respb.ParseOne(input, 0)
	require.NoError(t, err)
	assert.Equal(t, len(input), newOffset)
	assert.Equal(t, respb.OpSet, cmd.Opcode)
	require.Equal(t, 2, cmd.Argc())
	assert.Equal(t, "mykey", string(cmd.Args[0]))
	assert.Equal(t, "myvalue", string(cmd.Args[1]))
	require.Len(t, cmd.Opaque, 1)
	assert.Equal(t, make([]byte, 9), cmd.Opaque[0])
}

func TestParseOneMGetThreeKeys(t *testing.T) {
	input := []byte{
		0x00, 0x0C, 0x00, 0x00,
		0x00, 0x03,
		0x00, 0x04, 'k', 'e', 'y', '1',
		0x00, 0x04, 'k', 'e', 'y', '2',
		0x00, 0x04, 'k', 'e', 'y', '3',
	}

	cmd, newOffset, err := respb.ParseOne(input, 0)
	require.NoError(t, err)
	assert.Equal(t, len(input), newOffset)
	assert.Equal(t, respb.OpMGet, cmd.Opcode)
	require.Equal(t, 3, cmd.Argc())
	assert.Equal(t, []string{"key1", "key2", "key3"}, argStrings(cmd.Args))
}

func TestParseOneJSONSetModuleFrame(t *testing.T) {
	input := []byte{
		0xF0, 0x00, 0x00, 0x00, // module opcode, mux_id
		0x00, 0x00, 0x00, 0x00, // module_id=0, command_id=0 (JSON.SET)
		0x00, 0x07, 'p', 'r', 'o', 'f', 'i', 'l', 'e',
		0x00, 0x05, '.', 'n', 'a', 'm', 'e',
		0x00, 0x00, 0x00, 0x0A, '"', 'J', 'o', 'h', 'n', ' ', 'D', 'o', 'e', '"',
		0x00,
	}

	cmd, newOffset, err := respb.ParseOne(input, 0)
	require.NoError(t, err)
	assert.Equal(t, len(input), newOffset)
	assert.Equal(t, respb.OpModule, cmd.Opcode)
	assert.Equal(t, respb.ModuleJSON, cmd.ModuleID)
	assert.Equal(t, uint16(0), cmd.CommandID)
	require.Equal(t, 3, cmd.Argc())
	assert.Equal(t, "profile", string(cmd.Args[0]))
	assert.Equal(t, ".name", string(cmd.Args[1]))
	assert.Equal(t, `"John Doe"`, string(cmd.Args[2]))
	require.Len(t, cmd.Opaque, 1)
	assert.Equal(t, []byte{0x00}, cmd.Opaque[0])
}

func TestParseOnePassthrough(t *testing.T) {
	respData := []byte("*3\r\n$3\r\nSET\r\n$3\r\nfoo\r\n$3\r\nbar\r\n")
	input := append([]byte{
		0xFF, 0xFF, 0x00, 0x00,
		0x00, 0x00, 0x00, byte(len(respData)),
	}, respData...)

	cmd, newOffset, err := respb.ParseOne(input, 0)
	require.NoError(t, err)
	assert.Equal(t, len(input), newOffset)
	assert.Equal(t, respb.OpRespPassthrough, cmd.Opcode)
	assert.Equal(t, 0, cmd.Argc())
	assert.Equal(t, uint32(len(respData)), cmd.RESPLength)
	assert.Equal(t, respData, cmd.RESPData)
}

func TestParseOneTruncatedHeaderIsIncomplete(t *testing.T) {
	input := []byte{0x00, 0x00}

	cmd, newOffset, err := respb.ParseOne(input, 0)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, newOffset)
	assert.True(t, respb.IsIncomplete(err))
}

func TestParseOneUnknownOpcode(t *testing.T) {
	input := []byte{0xBE, 0xEF, 0x00, 0x00}

	cmd, newOffset, err := respb.ParseOne(input, 0)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, newOffset)
	assert.True(t, respb.IsUnknownOpcode(err))
}

func TestParseOneStreamingSafety(t *testing.T) {
	full := []byte{
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x05, 'm', 'y', 'k', 'e', 'y',
	}

	for n := 0; n < len(full); n++ {
		prefix := full[:n]
		cmd, newOffset, err := respb.ParseOne(prefix, 0)
		assert.Nil(t, cmd)
		assert.Equal(t, 0, newOffset)
		assert.True(t, respb.IsIncomplete(err), "prefix length %d should be incomplete", n)
	}

	cmd, newOffset, err := respb.ParseOne(full, 0)
	require.NoError(t, err)
	assert.Equal(t, len(full), newOffset)
	assert.NotNil(t, cmd)

	trailing := append(append([]byte{}, full...), 0xAA, 0xBB)
	cmd, newOffset, err = respb.ParseOne(trailing, 0)
	require.NoError(t, err)
	assert.Equal(t, len(full), newOffset)
	assert.NotNil(t, cmd)
}

func TestReservedOpcodeRangeIsUnknown(t *testing.T) {
	for _, op := range []respb.Opcode{0xF001, 0xF123, 0xFFFE} {
		input := []byte{byte(op >> 8), byte(op), 0x00, 0x00}
		cmd, newOffset, err := respb.ParseOne(input, 0)
		assert.Nil(t, cmd)
		assert.Equal(t, 0, newOffset)
		assert.True(t, respb.IsUnknownOpcode(err), "opcode 0x%04X should be unknown", op)
	}
}

func TestParseOneGenericArgsOpcode(t *testing.T) {
	input := []byte{
		0x02, 0x60, 0x00, 0x00, // EVAL
		0x00, 0x02,
		0x00, 0x0B, 'r', 'e', 't', 'u', 'r', 'n', ' ', '1', '+', '1', ';',
		0x00, 0x01, '0',
	}

	cmd, newOffset, err := respb.ParseOne(input, 0)
	require.NoError(t, err)
	assert.Equal(t, len(input), newOffset)
	assert.Equal(t, respb.OpEval, cmd.Opcode)
	require.Equal(t, 2, cmd.Argc())
	assert.Equal(t, "return 1+1;", string(cmd.Args[0]))
	assert.Equal(t, "0", string(cmd.Args[1]))
}

func TestParseOneGenericArgsOpcodeEmpty(t *testing.T) {
	input := []byte{0x03, 0x40, 0x00, 0x00, 0x00, 0x00} // CLUSTER, no args

	cmd, newOffset, err := respb.ParseOne(input, 0)
	require.NoError(t, err)
	assert.Equal(t, len(input), newOffset)
	assert.Equal(t, respb.OpCluster, cmd.Opcode)
	assert.Equal(t, 0, cmd.Argc())
}

func TestParseOneBloomFilterModuleFrame(t *testing.T) {
	input := []byte{
		0xF0, 0x00, 0x00, 0x00,
		0x00, 0x01, 0x00, 0x00, // module_id=1 (Bloom), command_id=0 (BF.ADD)
		0x00, 0x06, 'f', 'i', 'l', 't', 'e', 'r',
		0x00, 0x04, 'i', 't', 'e', 'm',
	}

	cmd, newOffset, err := respb.ParseOne(input, 0)
	require.NoError(t, err)
	assert.Equal(t, len(input), newOffset)
	assert.Equal(t, respb.ModuleBloom, cmd.ModuleID)
	assert.Equal(t, "BF.ADD", respb.ModuleNameFor(cmd.ModuleID, cmd.CommandID))
	require.Equal(t, 2, cmd.Argc())
	assert.Equal(t, "filter", string(cmd.Args[0]))
	assert.Equal(t, "item", string(cmd.Args[1]))
}

func TestParseOneSearchModuleFrame(t *testing.T) {
	input := []byte{
		0xF0, 0x00, 0x00, 0x00,
		0x00, 0x02, 0x00, 0x01, // module_id=2 (Search), command_id=1 (FT.SEARCH)
		0x00, 0x05, 'i', 'n', 'd', 'e', 'x',
		0x00, 0x07, '@', 'f', 'i', 'e', 'l', 'd', ':',
	}

	cmd, newOffset, err := respb.ParseOne(input, 0)
	require.NoError(t, err)
	assert.Equal(t, len(input), newOffset)
	assert.Equal(t, "FT.SEARCH", respb.ModuleNameFor(cmd.ModuleID, cmd.CommandID))
	require.Equal(t, 2, cmd.Argc())
}

func TestParseOneUnknownModuleCommandFallsBackToSingleKey(t *testing.T) {
	input := []byte{
		0xF0, 0x00, 0x00, 0x00,
		0x00, 0x09, 0x12, 0x34, // an unregistered module_id/command_id pair
		0x00, 0x03, 'k', 'e', 'y',
	}

	cmd, newOffset, err := respb.ParseOne(input, 0)
	require.NoError(t, err)
	assert.Equal(t, len(input), newOffset)
	assert.Equal(t, "UNKNOWN", respb.ModuleNameFor(cmd.ModuleID, cmd.CommandID))
	require.Equal(t, 1, cmd.Argc())
	assert.Equal(t, "key", string(cmd.Args[0]))
}

func TestParseOnePassthroughTruncatedPayloadIsIncomplete(t *testing.T) {
	input := []byte{
		0xFF, 0xFF, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x0A, // declares 10 bytes of RESP payload
		'*', '1', '\r', '\n', // but only 4 are present
	}

	cmd, newOffset, err := respb.ParseOne(input, 0)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, newOffset)
	assert.True(t, respb.IsIncomplete(err))
}

func argStrings(args [][]byte) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = string(a)
	}
	return out
}
