package respb

// moduleKey identifies a single (module, command) pair for dispatch.
type moduleKey struct {
	module  ModuleID
	command uint16
}

// gJSONSet matches JSON.SET: [key:short_string, path:short_string, value:long_string, flags:fixed(1)].
var gJSONSet = grammar{
	parse: func(c *cursor, cmd *ParsedCommand) error {
		key, err := c.shortString()
		if err != nil {
			return err
		}
		path, err := c.shortString()
		if err != nil {
			return err
		}
		val, err := c.longString(MaxLongStringLen)
		if err != nil {
			return err
		}
		flags, err := c.bytes(1)
		if err != nil {
			return err
		}
		cmd.appendArg(key)
		cmd.appendArg(path)
		cmd.appendArg(val)
		cmd.appendOpaque(flags)
		return nil
	},
	write: func(b *builder, args *argSeq, opq *opaqueSeq) error {
		if err := b.putShortString(args.next()); err != nil {
			return err
		}
		if err := b.putShortString(args.next()); err != nil {
			return err
		}
		if err := b.putLongString(args.next()); err != nil {
			return err
		}
		return b.putBytes(opq.next())
	},
}

// gJSONGet matches JSON.GET: [key:short_string, count_u16_then [path:short_string]].
var gJSONGet = grammar{
	parse: gKeyPlusCountedShort.parse,
	write: gKeyPlusCountedShort.write,
}

// moduleGrammars holds the handful of module commands with a bespoke grammar.
// Every other (module_id, command_id) pair falls back to moduleGenericGrammar, a
// single-key grammar, per the protocol description's explicit leniency for
// unrecognised module commands.
var moduleGrammars = map[moduleKey]grammar{
	{ModuleJSON, 0x0000}:  gJSONSet,  // JSON.SET
	{ModuleJSON, 0x0001}:  gJSONGet,  // JSON.GET
	{ModuleBloom, 0x0000}: gKeyField, // BF.ADD: key + item
	{ModuleBloom, 0x0001}: gKeyField, // BF.EXISTS: key + item
	{ModuleFT, 0x0001}:    gKeyField, // FT.SEARCH: index + query
}

// moduleGenericGrammar is used for any (module_id, command_id) pair with no
// bespoke entry above — a best-effort single-key frame, matching the reference's
// leniency rather than rejecting the command outright.
var moduleGenericGrammar = gKeyOnly

// moduleGrammarFor returns the grammar to use for a module sub-command.
func moduleGrammarFor(module ModuleID, command uint16) grammar {
	if g, ok := moduleGrammars[moduleKey{module, command}]; ok {
		return g
	}
	return moduleGenericGrammar
}

var moduleNames = map[moduleKey]string{
	{ModuleJSON, 0x0000}:  "JSON.SET",
	{ModuleJSON, 0x0001}:  "JSON.GET",
	{ModuleBloom, 0x0000}: "BF.ADD",
	{ModuleBloom, 0x0001}: "BF.EXISTS",
	{ModuleFT, 0x0001}:    "FT.SEARCH",
}

// ModuleNameFor returns the dotted command name for a module sub-command (e.g.
// "JSON.SET"), or "UNKNOWN" if no name is registered.
func ModuleNameFor(module ModuleID, command uint16) string {
	if n, ok := moduleNames[moduleKey{module, command}]; ok {
		return n
	}
	return "UNKNOWN"
}

func moduleSubcommand(module ModuleID, command uint16) uint32 {
	return uint32(module)<<16 | uint32(command)
}

func splitModuleSubcommand(subcommand uint32) (ModuleID, uint16) {
	return ModuleID(subcommand >> 16), uint16(subcommand)
}
