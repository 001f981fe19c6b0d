package respbserver

import (
	"sync"

	respb "github.com/maxpert/respb-protocol"
)

// store is a minimal in-memory string map, enough to give GET/SET/PING real
// request/response semantics for the demo server. It is not a general
// key-value engine and never will be — the point of cmd/respb-server is
// exercising the wire protocol, not implementing a database.
type store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func newStore() *store {
	return &store{data: make(map[string][]byte)}
}

// dispatch turns a parsed command into a reply frame, or (nil, nil) for
// commands the demo store doesn't answer.
func (s *Server) dispatch(cmd *respb.ParsedCommand) (*respb.ParsedCommand, error) {
	switch cmd.Opcode {
	case respb.OpPing:
		return &respb.ParsedCommand{Opcode: respb.OpPing, MuxID: cmd.MuxID}, nil

	case respb.OpSet:
		if cmd.Argc() < 2 {
			return nil, nil
		}
		s.store.mu.Lock()
		s.store.data[string(cmd.Args[0])] = append([]byte(nil), cmd.Args[1]...)
		s.store.mu.Unlock()
		// OpSet's grammar (gKeyLongFixed(9)) expects key, value, and a 9-byte
		// opaque flags+expiry block on write, same as on read — echo the key
		// and value back with a zeroed opaque block rather than reusing the
		// opcode with a shape its own grammar doesn't accept.
		return &respb.ParsedCommand{
			Opcode: respb.OpSet,
			MuxID:  cmd.MuxID,
			Args:   [][]byte{cmd.Args[0], cmd.Args[1]},
			Opaque: [][]byte{make([]byte, 9)},
		}, nil

	case respb.OpGet:
		if cmd.Argc() < 1 {
			return nil, nil
		}
		s.store.mu.RLock()
		val, ok := s.store.data[string(cmd.Args[0])]
		s.store.mu.RUnlock()
		if !ok {
			val = []byte{}
		}
		return &respb.ParsedCommand{Opcode: respb.OpGet, MuxID: cmd.MuxID, Args: [][]byte{val}}, nil

	default:
		return nil, nil
	}
}
