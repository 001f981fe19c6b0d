package respb

// grammars maps every currently assigned core opcode to its payload grammar.
// Entries for closely related commands intentionally share a grammar value, per
// the protocol description's own grouping (GET/DECR/INCR/STRLEN/... all reduce to
// a single short_string key).
var grammars = map[Opcode]grammar{
	// Strings.
	OpGet:         gKeyOnly,
	OpSet:         gKeyLongFixed(9), // value + 1-byte flags + 8-byte expiry
	OpAppend:      gKeyLong,
	OpDecr:        gKeyOnly,
	OpDecrBy:      gKeyFixed(8),
	OpGetDel:      gKeyOnly,
	OpGetEx:       gKeyFixed(9), // 1-byte flags + 8-byte expiry, no value
	OpGetRange:    gRangeOps(16),
	OpGetSet:      gKeyLong,
	OpIncr:        gKeyOnly,
	OpIncrBy:      gKeyFixed(8),
	OpIncrByFloat: gKeyFixed(8),
	OpMGet:        gMultiKeyCounted,
	OpMSet:        gMultiPair,
	OpMSetNX:      gMultiPair,
	OpPSetEx:      gKeyFixedThenLong(8),
	OpSetEx:       gKeyFixedThenLong(8),
	OpSetNX:       gKeyLong,
	OpSetRange:    gKeyFixedThenLong(8),
	OpStrlen:      gKeyOnly,
	OpSubstr:      gRangeOps(16),
	OpLCS:         gKeyField,
	OpDelIfEq:     gKeyLong,

	// Lists.
	OpLPush:      gKeyPlusCountedShort,
	OpRPush:      gKeyPlusCountedShort,
	OpLPushX:     gKeyPlusCountedShort,
	OpRPushX:     gKeyPlusCountedShort,
	OpLPop:       gKeyFixed(8), // 8-byte count, always present, carried opaquely
	OpRPop:       gKeyFixed(8),
	OpLLen:       gKeyOnly,
	OpLRange:     gRangeOps(16),
	OpLIndex:     gKeyFixed(8),
	OpLInsert:    gKeyField,
	OpLRem:       gKeyFixed(8),
	OpLSet:       gKeyFixed(8),
	OpLTrim:      gRangeOps(16),
	OpLPos:       gKeyField,
	OpRPopLPush:  gKeyField,
	OpLMove:      gKeyField,
	OpBLPop:      gMultiKeyCounted,
	OpBRPop:      gMultiKeyCounted,
	OpBRPopLPush: gKeyField,
	OpBLMove:     gKeyField,
	OpLMPop:      gMultiKeyCounted,
	OpBLMPop:     gMultiKeyCounted,

	// Sets.
	OpSAdd:        gKeyPlusCountedShort,
	OpSRem:        gKeyPlusCountedShort,
	OpSMembers:    gKeyOnly,
	OpSCard:       gKeyOnly,
	OpSIsMember:   gKeyField,
	OpSMove:       gKeyField,
	OpSPop:        gKeyFixed(8),
	OpSRandMember: gKeyFixed(8),
	OpSInter:      gMultiKeyCounted,
	OpSInterStore: gDestPlusCountedKeys,
	OpSUnion:      gMultiKeyCounted,
	OpSUnionStore: gDestPlusCountedKeys,
	OpSDiff:       gMultiKeyCounted,
	OpSDiffStore:  gDestPlusCountedKeys,
	OpSScan:       gKeyFixed(8),
	OpSInterCard:  gMultiKeyCounted,
	OpSMisMember:  gKeyPlusCountedShort,

	// Sorted sets.
	OpZAdd:             gZAdd,
	OpZRem:             gKeyPlusCountedShort,
	OpZScore:           gKeyField,
	OpZIncrBy:          gKeyFixed(8),
	OpZCard:            gKeyOnly,
	OpZCount:           gRangeOps(16),
	OpZRange:           gRangeOps(16),
	OpZRangeByScore:    gRangeOps(16),
	OpZRangeByLex:      gKeyField,
	OpZRevRange:        gRangeOps(16),
	OpZRevRangeByScore: gRangeOps(16),
	OpZRevRangeByLex:   gKeyField,
	OpZRank:            gKeyField,
	OpZRevRank:         gKeyField,
	OpZRemRangeByRank:  gRangeOps(16),
	OpZRemRangeByScore: gRangeOps(16),
	OpZRemRangeByLex:   gKeyField,
	OpZLexCount:        gKeyField,
	OpZMScore:          gKeyPlusCountedShort,
	OpZPopMin:          gKeyFixed(8),
	OpZPopMax:          gKeyFixed(8),
	OpBZPopMin:         gMultiKeyCounted,
	OpBZPopMax:         gMultiKeyCounted,
	OpZRandMember:      gKeyFixed(8),
	OpZDiff:            gMultiKeyCounted,
	OpZDiffStore:       gDestPlusCountedKeys,
	OpZInter:           gMultiKeyCounted,
	OpZInterStore:      gDestPlusCountedKeys,
	OpZInterCard:       gMultiKeyCounted,
	OpZUnion:           gMultiKeyCounted,
	OpZUnionStore:      gDestPlusCountedKeys,
	OpZScan:            gKeyFixed(8),
	OpZMPop:            gMultiKeyCounted,
	OpBZMPop:           gMultiKeyCounted,
	OpZRangeStore:      gKeyField,

	// Hashes.
	OpHSet:         gHashSet,
	OpHGet:         gKeyField,
	OpHDel:         gKeyPlusCountedShort,
	OpHExists:      gKeyField,
	OpHGetAll:      gKeyOnly,
	OpHKeys:        gKeyOnly,
	OpHVals:        gKeyOnly,
	OpHLen:         gKeyOnly,
	OpHMGet:        gKeyPlusCountedShort,
	OpHMSet:        gHashSet,
	OpHSetNX:       gKeyFieldLong,
	OpHIncrBy:      gKeyFieldFixed(8),
	OpHIncrByFloat: gKeyFieldFixed(8),
	OpHStrlen:      gKeyField,
	OpHScan:        gKeyFixed(8),
	OpHRandField:   gKeyFixed(8),
	OpHExpire:      gKeyPlusCountedShort,
	OpHPExpire:     gKeyPlusCountedShort,
	OpHExpireAt:    gKeyPlusCountedShort,
	OpHPExpireAt:   gKeyPlusCountedShort,
	OpHPersist:     gKeyPlusCountedShort,
	OpHTTL:         gKeyPlusCountedShort,
	OpHPTTL:        gKeyPlusCountedShort,
	OpHExpireTime:  gKeyPlusCountedShort,
	OpHPExpireTime: gKeyPlusCountedShort,
	OpHGetEx:       gKeyPlusCountedShort,
	OpHSetEx:       gHashSet,

	// Bitmaps.
	OpSetBit:     gKeyFixed(9),
	OpGetBit:     gKeyFixed(8),
	OpBitCount:   gKeyFixed(16),
	OpBitPos:     gKeyFixed(17),
	OpBitOp:      gDestPlusCountedKeys,
	OpBitField:   gKeyFixed(8),
	OpBitFieldRO: gKeyFixed(8),

	// HyperLogLog.
	OpPFAdd:      gKeyPlusCountedShort,
	OpPFCount:    gMultiKeyCounted,
	OpPFMerge:    gDestPlusCountedKeys,
	OpPFDebug:    gKeyField,
	OpPFSelfTest: gNoPayload,

	// Geospatial.
	OpGeoAdd:           gKeyPlusCountedShort,
	OpGeoDist:          gKeyField,
	OpGeoHash:          gKeyPlusCountedShort,
	OpGeoPos:           gKeyPlusCountedShort,
	OpGeoRadius:        gGenericArgs,
	OpGeoRadiusByMem:   gGenericArgs,
	OpGeoRadiusRO:      gGenericArgs,
	OpGeoRadiusByMemRO: gGenericArgs,
	OpGeoSearch:        gGenericArgs,
	OpGeoSearchStore:   gGenericArgs,

	// Streams.
	OpXAdd:       gHashSet,
	OpXLen:       gKeyOnly,
	OpXRange:     gRangeOps(16),
	OpXRevRange:  gRangeOps(16),
	OpXRead:      gGenericArgs,
	OpXReadGroup: gGenericArgs,
	OpXDel:       gKeyPlusCountedShort,
	OpXTrim:      gKeyFixed(9),
	OpXAck:       gKeyPlusCountedShort,
	OpXPending:   gGenericArgs,
	OpXClaim:     gGenericArgs,
	OpXAutoClaim: gGenericArgs,
	OpXInfo:      gGenericArgs,
	OpXGroup:     gGenericArgs,
	OpXSetID:     gKeyFixed(8),

	// Pub/sub.
	OpPublish:      gKeyLong,
	OpSubscribe:    gMultiKeyCounted,
	OpUnsubscribe:  gMultiKeyCounted,
	OpPSubscribe:   gMultiKeyCounted,
	OpPUnsubscribe: gMultiKeyCounted,
	OpPubSub:       gGenericArgs,
	OpSPublish:     gKeyLong,
	OpSSubscribe:   gMultiKeyCounted,
	OpSUnsubscribe: gMultiKeyCounted,

	// Transactions.
	OpMulti:   gNoPayload,
	OpExec:    gNoPayload,
	OpDiscard: gNoPayload,
	OpWatch:   gMultiKeyCounted,
	OpUnwatch: gNoPayload,

	// Scripting and functions.
	OpEval:      gGenericArgs,
	OpEvalSha:   gGenericArgs,
	OpEvalRO:    gGenericArgs,
	OpEvalShaRO: gGenericArgs,
	OpFCall:     gGenericArgs,
	OpFCallRO:   gGenericArgs,
	OpScript:    gGenericArgs,
	OpFunction:  gGenericArgs,

	// Generic key operations.
	OpDel:         gMultiKeyCounted,
	OpExists:      gMultiKeyCounted,
	OpExpire:      gKeyFixed(9),
	OpExpireAt:    gKeyFixed(9),
	OpPExpire:     gKeyFixed(9),
	OpPExpireAt:   gKeyFixed(9),
	OpTTL:         gKeyOnly,
	OpPTTL:        gKeyOnly,
	OpPersist:     gKeyOnly,
	OpRename:      gKeyField,
	OpRenameNX:    gKeyField,
	OpRandomKey:   gNoPayload,
	OpKeys:        gKeyOnly,
	OpScan:        gGenericArgs,
	OpType:        gKeyOnly,
	OpTouch:       gMultiKeyCounted,
	OpUnlink:      gMultiKeyCounted,
	OpDump:        gKeyOnly,
	OpRestore:     gGenericArgs,
	OpMigrate:     gGenericArgs,
	OpMove:        gKeyFixed(8),
	OpCopy:        gKeyField,
	OpSort:        gGenericArgs,
	OpSortRO:      gGenericArgs,
	OpObject:      gGenericArgs,
	OpExpireTime:  gKeyOnly,
	OpPExpireTime: gKeyOnly,
	OpWait:        gKeyFixed(16),
	OpWaitAOF:     gKeyFixed(16),

	// Connection management.
	OpPing:   gNoPayload,
	OpEcho:   gKeyOnly,
	OpAuth:   gGenericArgs,
	OpSelect: gKeyFixed(8),
	OpSwapDB: gKeyFixed(8),
	OpQuit:   gNoPayload,
	OpHello:  gGenericArgs,
	OpReset:  gNoPayload,
	OpClient: gGenericArgs,

	// Cluster management.
	OpCluster:   gGenericArgs,
	OpReadOnly:  gNoPayload,
	OpReadWrite: gNoPayload,
	OpAsking:    gNoPayload,

	// Server management.
	OpDBSize:       gNoPayload,
	OpFlushDB:      gGenericArgs,
	OpFlushAll:     gGenericArgs,
	OpInfo:         gGenericArgs,
	OpConfig:       gGenericArgs,
	OpCommand:      gGenericArgs,
	OpTime:         gNoPayload,
	OpLastSave:     gNoPayload,
	OpSave:         gNoPayload,
	OpBgSave:       gGenericArgs,
	OpBgRewriteAOF: gNoPayload,
	OpShutdown:     gGenericArgs,
	OpSlaveOf:      gKeyField,
	OpReplicaOf:    gKeyField,
	OpDebug:        gGenericArgs,
	OpMemory:       gGenericArgs,
	OpLatency:      gGenericArgs,
	OpSlowLog:      gGenericArgs,
	OpACL:          gGenericArgs,
	OpLolwut:       gGenericArgs,
	OpFailover:     gGenericArgs,
	OpCommandLog:   gGenericArgs,
}

// GrammarFor returns the payload grammar registered for op, and false if op has
// no assigned grammar (an unknown opcode, per the protocol's partitioning rules).
func GrammarFor(op Opcode) (grammar, bool) {
	g, ok := grammars[op]
	return g, ok
}
