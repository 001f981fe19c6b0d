package respbserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	respb "github.com/maxpert/respb-protocol"
)

// mustEncode asserts that reply actually serializes against its own opcode's
// registered grammar — a dispatch handler that builds a reply shape its own
// grammar's write half can't consume would otherwise only panic in
// production, never in a test that only inspects the struct.
func mustEncode(t *testing.T, reply *respb.ParsedCommand) []byte {
	t.Helper()
	out := make([]byte, 256)
	n, err := respb.WriteCommand(out, reply)
	require.NoError(t, err)
	return out[:n]
}

func TestDispatchSetThenGet(t *testing.T) {
	s := New(zap.NewNop())

	setReply, err := s.dispatch(&respb.ParsedCommand{
		Opcode: respb.OpSet,
		MuxID:  7,
		Args:   [][]byte{[]byte("k"), []byte("v")},
	})
	require.NoError(t, err)
	require.NotNil(t, setReply)
	assert.Equal(t, respb.OpSet, setReply.Opcode)
	assert.Equal(t, uint16(7), setReply.MuxID)
	mustEncode(t, setReply)

	getReply, err := s.dispatch(&respb.ParsedCommand{
		Opcode: respb.OpGet,
		MuxID:  7,
		Args:   [][]byte{[]byte("k")},
	})
	require.NoError(t, err)
	require.NotNil(t, getReply)
	require.Len(t, getReply.Args, 1)
	assert.Equal(t, "v", string(getReply.Args[0]))
	mustEncode(t, getReply)
}

func TestDispatchGetMissingKeyReturnsEmpty(t *testing.T) {
	s := New(zap.NewNop())

	reply, err := s.dispatch(&respb.ParsedCommand{
		Opcode: respb.OpGet,
		Args:   [][]byte{[]byte("missing")},
	})
	require.NoError(t, err)
	require.NotNil(t, reply)
	require.Len(t, reply.Args, 1)
	assert.Empty(t, reply.Args[0])
	mustEncode(t, reply)
}

func TestDispatchPing(t *testing.T) {
	s := New(zap.NewNop())

	reply, err := s.dispatch(&respb.ParsedCommand{Opcode: respb.OpPing, MuxID: 3})
	require.NoError(t, err)
	require.NotNil(t, reply)
	assert.Equal(t, respb.OpPing, reply.Opcode)
	assert.Equal(t, uint16(3), reply.MuxID)
	mustEncode(t, reply)
}

func TestDispatchUnknownCommandReturnsNil(t *testing.T) {
	s := New(zap.NewNop())

	reply, err := s.dispatch(&respb.ParsedCommand{Opcode: respb.OpDBSize})
	require.NoError(t, err)
	assert.Nil(t, reply)
}
