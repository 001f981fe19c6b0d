package respb

// ParseOne attempts to parse exactly one frame from buf starting at offset.
//
// On success it returns the parsed command and the offset of the first byte past
// the frame. On a truncated frame it returns ErrIncomplete and the original
// offset unchanged — the caller should retry once more bytes are available. On a
// malformed frame (an opcode with no assigned grammar) it returns an error and the
// original offset.
//
// ParseOne performs no I/O and does not mutate buf. Every []byte slice reachable
// from the returned ParsedCommand is borrowed from buf and remains valid only as
// long as buf is not modified or freed.
func ParseOne(buf []byte, offset int) (*ParsedCommand, int, error) {
	c := &cursor{buf: buf, pos: offset}

	op, err := c.u16()
	if err != nil {
		return nil, offset, err
	}
	muxID, err := c.u16()
	if err != nil {
		return nil, offset, err
	}
	opcode := Opcode(op)

	cmd := &ParsedCommand{Opcode: opcode, MuxID: muxID}

	var payloadStart int
	switch opcode {
	case OpModule:
		sub, err := c.u32()
		if err != nil {
			return nil, offset, err
		}
		cmd.ModuleID, cmd.CommandID = splitModuleSubcommand(sub)
		payloadStart = c.pos
		if err := moduleGrammarFor(cmd.ModuleID, cmd.CommandID).parse(c, cmd); err != nil {
			return nil, offset, err
		}
	case OpRespPassthrough:
		payloadStart = c.pos + 4
		if err := parsePassthroughFrame(c, cmd); err != nil {
			return nil, offset, err
		}
	default:
		g, ok := GrammarFor(opcode)
		if !ok {
			return nil, offset, &UnknownOpcodeError{Opcode: opcode}
		}
		payloadStart = c.pos
		if err := g.parse(c, cmd); err != nil {
			return nil, offset, err
		}
	}

	cmd.RawPayload = buf[payloadStart:c.pos:c.pos]
	return cmd, c.pos, nil
}

func parsePassthroughFrame(c *cursor, cmd *ParsedCommand) error {
	length, err := c.u32()
	if err != nil {
		return err
	}
	data, err := c.bytes(int(length))
	if err != nil {
		return err
	}
	cmd.RESPLength = length
	cmd.RESPData = data
	return nil
}
