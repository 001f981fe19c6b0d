package respb

// WriteCommand serializes cmd into buf, returning the number of bytes written.
// It is the inverse of ParseOne: for any ParsedCommand produced by ParseOne,
// WriteCommand reproduces the original frame bitwise (the round-trip contract),
// because every opaque byte range the grammar consumed but did not surface as an
// Arg was recorded on ParsedCommand.Opaque in encounter order and is replayed here
// in the same order.
//
// Frames whose argument count exceeded MaxArgs are not reproduced: ParseOne
// stores only the first MaxArgs arguments, and WriteCommand writes the counts
// and elements of what is stored on Args.
//
// WriteCommand returns ErrInsufficientCapacity, without partially-defined side
// effects the caller can rely on, if buf is too small; the caller should discard
// buf in that case.
func WriteCommand(buf []byte, cmd *ParsedCommand) (int, error) {
	b := &builder{buf: buf}

	if err := b.putU16(uint16(cmd.Opcode)); err != nil {
		return 0, err
	}
	if err := b.putU16(cmd.MuxID); err != nil {
		return 0, err
	}

	args := &argSeq{args: cmd.Args}
	opq := &opaqueSeq{chunks: cmd.Opaque}

	switch cmd.Opcode {
	case OpModule:
		if err := b.putU32(moduleSubcommand(cmd.ModuleID, cmd.CommandID)); err != nil {
			return 0, err
		}
		g := moduleGrammarFor(cmd.ModuleID, cmd.CommandID)
		if err := g.write(b, args, opq); err != nil {
			return 0, err
		}
	case OpRespPassthrough:
		if err := b.putU32(cmd.RESPLength); err != nil {
			return 0, err
		}
		if err := b.putBytes(cmd.RESPData); err != nil {
			return 0, err
		}
	default:
		g, ok := GrammarFor(cmd.Opcode)
		if !ok {
			return 0, &UnknownOpcodeError{Opcode: cmd.Opcode}
		}
		if err := g.write(b, args, opq); err != nil {
			return 0, err
		}
	}

	return b.pos, nil
}

// HeaderLen returns the number of header bytes a frame for op occupies before its
// payload (4 for core opcodes, 8 for module and passthrough frames).
func HeaderLen(op Opcode) int {
	switch op {
	case OpModule, OpRespPassthrough:
		return 8
	default:
		return 4
	}
}
