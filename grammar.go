package respb

// grammar is a declarative description of one opcode's payload, realised as a
// parse/write function pair rather than a descriptor table — both forms are
// licensed by the protocol description, and a function pair reads more naturally
// here given how many opcodes share a shape via closures over a parameter (a fixed
// width, an inner grammar) rather than via a literal struct value.
type grammar struct {
	parse func(c *cursor, cmd *ParsedCommand) error
	write func(b *builder, args *argSeq, opq *opaqueSeq) error
}

// gNoPayload matches opcodes whose frame carries nothing past the header
// (PING, MULTI, EXEC, and similar control commands).
var gNoPayload = grammar{
	parse: func(c *cursor, cmd *ParsedCommand) error { return nil },
	write: func(b *builder, args *argSeq, opq *opaqueSeq) error { return nil },
}

// gKeyOnly matches a single short_string key with no further payload.
var gKeyOnly = grammar{
	parse: func(c *cursor, cmd *ParsedCommand) error {
		key, err := c.shortString()
		if err != nil {
			return err
		}
		cmd.appendArg(key)
		return nil
	},
	write: func(b *builder, args *argSeq, opq *opaqueSeq) error {
		return b.putShortString(args.next())
	},
}

// gKeyFixed matches [key:short_string, opaque:fixed(n)] — a key plus one block of
// bytes the core does not interpret (an operand, a timestamp, a flags+TTL block).
func gKeyFixed(n int) grammar {
	return grammar{
		parse: func(c *cursor, cmd *ParsedCommand) error {
			key, err := c.shortString()
			if err != nil {
				return err
			}
			extra, err := c.bytes(n)
			if err != nil {
				return err
			}
			cmd.appendArg(key)
			cmd.appendOpaque(extra)
			return nil
		},
		write: func(b *builder, args *argSeq, opq *opaqueSeq) error {
			if err := b.putShortString(args.next()); err != nil {
				return err
			}
			return b.putBytes(opq.next())
		},
	}
}

// gKeyLong matches [key:short_string, value:long_string].
var gKeyLong = grammar{
	parse: func(c *cursor, cmd *ParsedCommand) error {
		key, err := c.shortString()
		if err != nil {
			return err
		}
		val, err := c.longString(MaxLongStringLen)
		if err != nil {
			return err
		}
		cmd.appendArg(key)
		cmd.appendArg(val)
		return nil
	},
	write: func(b *builder, args *argSeq, opq *opaqueSeq) error {
		if err := b.putShortString(args.next()); err != nil {
			return err
		}
		return b.putLongString(args.next())
	},
}

// gKeyLongFixed matches [key:short_string, value:long_string, opaque:fixed(n)],
// the shape of SET (n=9: 1-byte flags + 8-byte expiry).
func gKeyLongFixed(n int) grammar {
	return grammar{
		parse: func(c *cursor, cmd *ParsedCommand) error {
			key, err := c.shortString()
			if err != nil {
				return err
			}
			val, err := c.longString(MaxLongStringLen)
			if err != nil {
				return err
			}
			extra, err := c.bytes(n)
			if err != nil {
				return err
			}
			cmd.appendArg(key)
			cmd.appendArg(val)
			cmd.appendOpaque(extra)
			return nil
		},
		write: func(b *builder, args *argSeq, opq *opaqueSeq) error {
			if err := b.putShortString(args.next()); err != nil {
				return err
			}
			if err := b.putLongString(args.next()); err != nil {
				return err
			}
			return b.putBytes(opq.next())
		},
	}
}

// gKeyFixedThenLong matches [key:short_string, opaque:fixed(n), value:long_string],
// the shape of SETEX/PSETEX (n=8: expiry) and SETRANGE (n=8: offset).
func gKeyFixedThenLong(n int) grammar {
	return grammar{
		parse: func(c *cursor, cmd *ParsedCommand) error {
			key, err := c.shortString()
			if err != nil {
				return err
			}
			extra, err := c.bytes(n)
			if err != nil {
				return err
			}
			val, err := c.longString(MaxLongStringLen)
			if err != nil {
				return err
			}
			cmd.appendArg(key)
			cmd.appendOpaque(extra)
			cmd.appendArg(val)
			return nil
		},
		write: func(b *builder, args *argSeq, opq *opaqueSeq) error {
			if err := b.putShortString(args.next()); err != nil {
				return err
			}
			if err := b.putBytes(opq.next()); err != nil {
				return err
			}
			return b.putLongString(args.next())
		},
	}
}

// gMultiKeyCounted matches [count_u16_then [key:short_string]] — MGET, DEL,
// EXISTS, and other bulk key-list operations.
var gMultiKeyCounted = grammar{
	parse: func(c *cursor, cmd *ParsedCommand) error {
		n, err := c.u16()
		if err != nil {
			return err
		}
		for i := uint16(0); i < n; i++ {
			key, err := c.shortString()
			if err != nil {
				return err
			}
			cmd.appendArg(key)
		}
		return nil
	},
	write: func(b *builder, args *argSeq, opq *opaqueSeq) error {
		if err := b.putU16(uint16(args.remaining())); err != nil {
			return err
		}
		for args.remaining() > 0 {
			if err := b.putShortString(args.next()); err != nil {
				return err
			}
		}
		return nil
	},
}

// gMultiPair matches [count_u16_then [key:short_string, value:long_string]] — MSET
// and MSETNX.
var gMultiPair = grammar{
	parse: func(c *cursor, cmd *ParsedCommand) error {
		n, err := c.u16()
		if err != nil {
			return err
		}
		for i := uint16(0); i < n; i++ {
			key, err := c.shortString()
			if err != nil {
				return err
			}
			val, err := c.longString(MaxLongStringLen)
			if err != nil {
				return err
			}
			cmd.appendArg(key)
			cmd.appendArg(val)
		}
		return nil
	},
	write: func(b *builder, args *argSeq, opq *opaqueSeq) error {
		if err := b.putU16(uint16(args.remaining() / 2)); err != nil {
			return err
		}
		for args.remaining() > 0 {
			if err := b.putShortString(args.next()); err != nil {
				return err
			}
			if err := b.putLongString(args.next()); err != nil {
				return err
			}
		}
		return nil
	},
}

// gKeyPlusCountedShort matches [key:short_string, count_u16_then [elem:short_string]]
// — LPUSH, RPUSH, SADD, SREM, ZREM, HDEL, PFADD, and similar.
var gKeyPlusCountedShort = grammar{
	parse: func(c *cursor, cmd *ParsedCommand) error {
		key, err := c.shortString()
		if err != nil {
			return err
		}
		cmd.appendArg(key)
		n, err := c.u16()
		if err != nil {
			return err
		}
		for i := uint16(0); i < n; i++ {
			elem, err := c.shortString()
			if err != nil {
				return err
			}
			cmd.appendArg(elem)
		}
		return nil
	},
	write: func(b *builder, args *argSeq, opq *opaqueSeq) error {
		if err := b.putShortString(args.next()); err != nil {
			return err
		}
		if err := b.putU16(uint16(args.remaining())); err != nil {
			return err
		}
		for args.remaining() > 0 {
			if err := b.putShortString(args.next()); err != nil {
				return err
			}
		}
		return nil
	},
}

// gDestPlusCountedKeys matches [dest:short_string, count_u16_then [key:short_string]]
// — SINTERSTORE, SUNIONSTORE, SDIFFSTORE, ZDIFFSTORE, PFMERGE.
var gDestPlusCountedKeys = grammar{
	parse: gKeyPlusCountedShort.parse,
	write: gKeyPlusCountedShort.write,
}

// gHashSet matches [key:short_string, count_u16_then [field:short_string, value:long_string]]
// — HSET / HMSET.
var gHashSet = grammar{
	parse: func(c *cursor, cmd *ParsedCommand) error {
		key, err := c.shortString()
		if err != nil {
			return err
		}
		cmd.appendArg(key)
		n, err := c.u16()
		if err != nil {
			return err
		}
		for i := uint16(0); i < n; i++ {
			field, err := c.shortString()
			if err != nil {
				return err
			}
			val, err := c.longString(MaxLongStringLen)
			if err != nil {
				return err
			}
			cmd.appendArg(field)
			cmd.appendArg(val)
		}
		return nil
	},
	write: func(b *builder, args *argSeq, opq *opaqueSeq) error {
		if err := b.putShortString(args.next()); err != nil {
			return err
		}
		if err := b.putU16(uint16(args.remaining() / 2)); err != nil {
			return err
		}
		for args.remaining() > 0 {
			if err := b.putShortString(args.next()); err != nil {
				return err
			}
			if err := b.putLongString(args.next()); err != nil {
				return err
			}
		}
		return nil
	},
}

// gKeyField matches [key:short_string, field:short_string] — HGET, HEXISTS,
// HSTRLEN, BF.ADD, BF.EXISTS, FT.SEARCH (where "field" is the second short-string
// operand regardless of its domain name).
var gKeyField = grammar{
	parse: func(c *cursor, cmd *ParsedCommand) error {
		key, err := c.shortString()
		if err != nil {
			return err
		}
		field, err := c.shortString()
		if err != nil {
			return err
		}
		cmd.appendArg(key)
		cmd.appendArg(field)
		return nil
	},
	write: func(b *builder, args *argSeq, opq *opaqueSeq) error {
		if err := b.putShortString(args.next()); err != nil {
			return err
		}
		return b.putShortString(args.next())
	},
}

// gKeyFieldLong matches [key:short_string, field:short_string, value:long_string]
// — HSETNX.
var gKeyFieldLong = grammar{
	parse: func(c *cursor, cmd *ParsedCommand) error {
		key, err := c.shortString()
		if err != nil {
			return err
		}
		field, err := c.shortString()
		if err != nil {
			return err
		}
		val, err := c.longString(MaxLongStringLen)
		if err != nil {
			return err
		}
		cmd.appendArg(key)
		cmd.appendArg(field)
		cmd.appendArg(val)
		return nil
	},
	write: func(b *builder, args *argSeq, opq *opaqueSeq) error {
		if err := b.putShortString(args.next()); err != nil {
			return err
		}
		if err := b.putShortString(args.next()); err != nil {
			return err
		}
		return b.putLongString(args.next())
	},
}

// gKeyFieldFixed matches [key:short_string, field:short_string, opaque:fixed(n)] —
// HINCRBY (n=8) and HINCRBYFLOAT (n=8).
func gKeyFieldFixed(n int) grammar {
	return grammar{
		parse: func(c *cursor, cmd *ParsedCommand) error {
			key, err := c.shortString()
			if err != nil {
				return err
			}
			field, err := c.shortString()
			if err != nil {
				return err
			}
			extra, err := c.bytes(n)
			if err != nil {
				return err
			}
			cmd.appendArg(key)
			cmd.appendArg(field)
			cmd.appendOpaque(extra)
			return nil
		},
		write: func(b *builder, args *argSeq, opq *opaqueSeq) error {
			if err := b.putShortString(args.next()); err != nil {
				return err
			}
			if err := b.putShortString(args.next()); err != nil {
				return err
			}
			return b.putBytes(opq.next())
		},
	}
}

// gZAdd matches [key:short_string, flags:fixed(1), count_u16_then [score:fixed(8), member:short_string]],
// the full ZADD grammar per the reimplementation's round-trip requirement (the
// reference only parses the key and one pair; see DESIGN.md).
var gZAdd = grammar{
	parse: func(c *cursor, cmd *ParsedCommand) error {
		key, err := c.shortString()
		if err != nil {
			return err
		}
		cmd.appendArg(key)
		flags, err := c.bytes(1)
		if err != nil {
			return err
		}
		cmd.appendOpaque(flags)
		n, err := c.u16()
		if err != nil {
			return err
		}
		for i := uint16(0); i < n; i++ {
			score, err := c.bytes(8)
			if err != nil {
				return err
			}
			member, err := c.shortString()
			if err != nil {
				return err
			}
			cmd.appendOpaque(score)
			cmd.appendArg(member)
		}
		return nil
	},
	write: func(b *builder, args *argSeq, opq *opaqueSeq) error {
		if err := b.putShortString(args.next()); err != nil {
			return err
		}
		if err := b.putBytes(opq.next()); err != nil {
			return err
		}
		if err := b.putU16(uint16(args.remaining())); err != nil {
			return err
		}
		for args.remaining() > 0 {
			if err := b.putBytes(opq.next()); err != nil {
				return err
			}
			if err := b.putShortString(args.next()); err != nil {
				return err
			}
		}
		return nil
	},
}

// gGenericArgs matches [count_u16_then [arg:short_string]] — a bounded,
// streaming-safe generic argument list used as the declared grammar for opcodes
// whose real option-flag shapes are numerous and command-specific (pub/sub,
// transactions, scripting, cluster, server management, and similar). This is the
// reimplementation's resolution of the "optional trailing fields" open question
// in the protocol notes: rather than sniffing the remaining buffer length (which
// is ambiguous once two frames share a buffer), every opcode gets an explicit,
// bounded, declarative shape. See DESIGN.md.
var gGenericArgs = grammar{
	parse: func(c *cursor, cmd *ParsedCommand) error {
		n, err := c.u16()
		if err != nil {
			return err
		}
		for i := uint16(0); i < n; i++ {
			arg, err := c.shortString()
			if err != nil {
				return err
			}
			cmd.appendArg(arg)
		}
		return nil
	},
	write: func(b *builder, args *argSeq, opq *opaqueSeq) error {
		if err := b.putU16(uint16(args.remaining())); err != nil {
			return err
		}
		for args.remaining() > 0 {
			if err := b.putShortString(args.next()); err != nil {
				return err
			}
		}
		return nil
	},
}

// gRangeOps matches [key:short_string, opaque:fixed(n)] — identical in shape to
// gKeyFixed, named separately for the range-query family (LRANGE/LTRIM,
// GETRANGE/SUBSTR, ZCOUNT, ZREMRANGEBYRANK) so the dispatch table reads by intent.
func gRangeOps(n int) grammar {
	return gKeyFixed(n)
}
