package respb

// names maps every currently assigned opcode to its canonical uppercased Redis
// command name. The reference protocol header's own name table covers only a
// couple dozen opcodes and falls back to "UNKNOWN" for the rest; this table is
// complete for every opcode declared in opcodes.go, per the completeness the
// protocol description requires of an opcode name table.
var names = map[Opcode]string{
	OpGet:         "GET",
	OpSet:         "SET",
	OpAppend:      "APPEND",
	OpDecr:        "DECR",
	OpDecrBy:      "DECRBY",
	OpGetDel:      "GETDEL",
	OpGetEx:       "GETEX",
	OpGetRange:    "GETRANGE",
	OpGetSet:      "GETSET",
	OpIncr:        "INCR",
	OpIncrBy:      "INCRBY",
	OpIncrByFloat: "INCRBYFLOAT",
	OpMGet:        "MGET",
	OpMSet:        "MSET",
	OpMSetNX:      "MSETNX",
	OpPSetEx:      "PSETEX",
	OpSetEx:       "SETEX",
	OpSetNX:       "SETNX",
	OpSetRange:    "SETRANGE",
	OpStrlen:      "STRLEN",
	OpSubstr:      "SUBSTR",
	OpLCS:         "LCS",
	OpDelIfEq:     "DELIFEQ",

	OpLPush:      "LPUSH",
	OpRPush:      "RPUSH",
	OpLPushX:     "LPUSHX",
	OpRPushX:     "RPUSHX",
	OpLPop:       "LPOP",
	OpRPop:       "RPOP",
	OpLLen:       "LLEN",
	OpLRange:     "LRANGE",
	OpLIndex:     "LINDEX",
	OpLInsert:    "LINSERT",
	OpLRem:       "LREM",
	OpLSet:       "LSET",
	OpLTrim:      "LTRIM",
	OpLPos:       "LPOS",
	OpRPopLPush:  "RPOPLPUSH",
	OpLMove:      "LMOVE",
	OpBLPop:      "BLPOP",
	OpBRPop:      "BRPOP",
	OpBRPopLPush: "BRPOPLPUSH",
	OpBLMove:     "BLMOVE",
	OpLMPop:      "LMPOP",
	OpBLMPop:     "BLMPOP",

	OpSAdd:        "SADD",
	OpSRem:        "SREM",
	OpSMembers:    "SMEMBERS",
	OpSCard:       "SCARD",
	OpSIsMember:   "SISMEMBER",
	OpSMove:       "SMOVE",
	OpSPop:        "SPOP",
	OpSRandMember: "SRANDMEMBER",
	OpSInter:      "SINTER",
	OpSInterStore: "SINTERSTORE",
	OpSUnion:      "SUNION",
	OpSUnionStore: "SUNIONSTORE",
	OpSDiff:       "SDIFF",
	OpSDiffStore:  "SDIFFSTORE",
	OpSScan:       "SSCAN",
	OpSInterCard:  "SINTERCARD",
	OpSMisMember:  "SMISMEMBER",

	OpZAdd:             "ZADD",
	OpZRem:             "ZREM",
	OpZScore:           "ZSCORE",
	OpZIncrBy:          "ZINCRBY",
	OpZCard:            "ZCARD",
	OpZCount:           "ZCOUNT",
	OpZRange:           "ZRANGE",
	OpZRangeByScore:    "ZRANGEBYSCORE",
	OpZRangeByLex:      "ZRANGEBYLEX",
	OpZRevRange:        "ZREVRANGE",
	OpZRevRangeByScore: "ZREVRANGEBYSCORE",
	OpZRevRangeByLex:   "ZREVRANGEBYLEX",
	OpZRank:            "ZRANK",
	OpZRevRank:         "ZREVRANK",
	OpZRemRangeByRank:  "ZREMRANGEBYRANK",
	OpZRemRangeByScore: "ZREMRANGEBYSCORE",
	OpZRemRangeByLex:   "ZREMRANGEBYLEX",
	OpZLexCount:        "ZLEXCOUNT",
	OpZMScore:          "ZMSCORE",
	OpZPopMin:          "ZPOPMIN",
	OpZPopMax:          "ZPOPMAX",
	OpBZPopMin:         "BZPOPMIN",
	OpBZPopMax:         "BZPOPMAX",
	OpZRandMember:      "ZRANDMEMBER",
	OpZDiff:            "ZDIFF",
	OpZDiffStore:       "ZDIFFSTORE",
	OpZInter:           "ZINTER",
	OpZInterStore:      "ZINTERSTORE",
	OpZInterCard:       "ZINTERCARD",
	OpZUnion:           "ZUNION",
	OpZUnionStore:      "ZUNIONSTORE",
	OpZScan:            "ZSCAN",
	OpZMPop:            "ZMPOP",
	OpBZMPop:           "BZMPOP",
	OpZRangeStore:      "ZRANGESTORE",

	OpHSet:         "HSET",
	OpHGet:         "HGET",
	OpHDel:         "HDEL",
	OpHExists:      "HEXISTS",
	OpHGetAll:      "HGETALL",
	OpHKeys:        "HKEYS",
	OpHVals:        "HVALS",
	OpHLen:         "HLEN",
	OpHMGet:        "HMGET",
	OpHMSet:        "HMSET",
	OpHSetNX:       "HSETNX",
	OpHIncrBy:      "HINCRBY",
	OpHIncrByFloat: "HINCRBYFLOAT",
	OpHStrlen:      "HSTRLEN",
	OpHScan:        "HSCAN",
	OpHRandField:   "HRANDFIELD",
	OpHExpire:      "HEXPIRE",
	OpHPExpire:     "HPEXPIRE",
	OpHExpireAt:    "HEXPIREAT",
	OpHPExpireAt:   "HPEXPIREAT",
	OpHPersist:     "HPERSIST",
	OpHTTL:         "HTTL",
	OpHPTTL:        "HPTTL",
	OpHExpireTime:  "HEXPIRETIME",
	OpHPExpireTime: "HPEXPIRETIME",
	OpHGetEx:       "HGETEX",
	OpHSetEx:       "HSETEX",

	OpSetBit:     "SETBIT",
	OpGetBit:     "GETBIT",
	OpBitCount:   "BITCOUNT",
	OpBitPos:     "BITPOS",
	OpBitOp:      "BITOP",
	OpBitField:   "BITFIELD",
	OpBitFieldRO: "BITFIELD_RO",

	OpPFAdd:      "PFADD",
	OpPFCount:    "PFCOUNT",
	OpPFMerge:    "PFMERGE",
	OpPFDebug:    "PFDEBUG",
	OpPFSelfTest: "PFSELFTEST",

	OpGeoAdd:           "GEOADD",
	OpGeoDist:          "GEODIST",
	OpGeoHash:          "GEOHASH",
	OpGeoPos:           "GEOPOS",
	OpGeoRadius:        "GEORADIUS",
	OpGeoRadiusByMem:   "GEORADIUSBYMEMBER",
	OpGeoRadiusRO:      "GEORADIUS_RO",
	OpGeoRadiusByMemRO: "GEORADIUSBYMEMBER_RO",
	OpGeoSearch:        "GEOSEARCH",
	OpGeoSearchStore:   "GEOSEARCHSTORE",

	OpXAdd:       "XADD",
	OpXLen:       "XLEN",
	OpXRange:     "XRANGE",
	OpXRevRange:  "XREVRANGE",
	OpXRead:      "XREAD",
	OpXReadGroup: "XREADGROUP",
	OpXDel:       "XDEL",
	OpXTrim:      "XTRIM",
	OpXAck:       "XACK",
	OpXPending:   "XPENDING",
	OpXClaim:     "XCLAIM",
	OpXAutoClaim: "XAUTOCLAIM",
	OpXInfo:      "XINFO",
	OpXGroup:     "XGROUP",
	OpXSetID:     "XSETID",

	OpPublish:      "PUBLISH",
	OpSubscribe:    "SUBSCRIBE",
	OpUnsubscribe:  "UNSUBSCRIBE",
	OpPSubscribe:   "PSUBSCRIBE",
	OpPUnsubscribe: "PUNSUBSCRIBE",
	OpPubSub:       "PUBSUB",
	OpSPublish:     "SPUBLISH",
	OpSSubscribe:   "SSUBSCRIBE",
	OpSUnsubscribe: "SUNSUBSCRIBE",

	OpMulti:   "MULTI",
	OpExec:    "EXEC",
	OpDiscard: "DISCARD",
	OpWatch:   "WATCH",
	OpUnwatch: "UNWATCH",

	OpEval:      "EVAL",
	OpEvalSha:   "EVALSHA",
	OpEvalRO:    "EVAL_RO",
	OpEvalShaRO: "EVALSHA_RO",
	OpFCall:     "FCALL",
	OpFCallRO:   "FCALL_RO",
	OpScript:    "SCRIPT",
	OpFunction:  "FUNCTION",

	OpDel:         "DEL",
	OpExists:      "EXISTS",
	OpExpire:      "EXPIRE",
	OpExpireAt:    "EXPIREAT",
	OpPExpire:     "PEXPIRE",
	OpPExpireAt:   "PEXPIREAT",
	OpTTL:         "TTL",
	OpPTTL:        "PTTL",
	OpPersist:     "PERSIST",
	OpRename:      "RENAME",
	OpRenameNX:    "RENAMENX",
	OpRandomKey:   "RANDOMKEY",
	OpKeys:        "KEYS",
	OpScan:        "SCAN",
	OpType:        "TYPE",
	OpTouch:       "TOUCH",
	OpUnlink:      "UNLINK",
	OpDump:        "DUMP",
	OpRestore:     "RESTORE",
	OpMigrate:     "MIGRATE",
	OpMove:        "MOVE",
	OpCopy:        "COPY",
	OpSort:        "SORT",
	OpSortRO:      "SORT_RO",
	OpObject:      "OBJECT",
	OpExpireTime:  "EXPIRETIME",
	OpPExpireTime: "PEXPIRETIME",
	OpWait:        "WAIT",
	OpWaitAOF:     "WAITAOF",

	OpPing:   "PING",
	OpEcho:   "ECHO",
	OpAuth:   "AUTH",
	OpSelect: "SELECT",
	OpSwapDB: "SWAPDB",
	OpQuit:   "QUIT",
	OpHello:  "HELLO",
	OpReset:  "RESET",
	OpClient: "CLIENT",

	OpCluster:   "CLUSTER",
	OpReadOnly:  "READONLY",
	OpReadWrite: "READWRITE",
	OpAsking:    "ASKING",

	OpDBSize:       "DBSIZE",
	OpFlushDB:      "FLUSHDB",
	OpFlushAll:     "FLUSHALL",
	OpInfo:         "INFO",
	OpConfig:       "CONFIG",
	OpCommand:      "COMMAND",
	OpTime:         "TIME",
	OpLastSave:     "LASTSAVE",
	OpSave:         "SAVE",
	OpBgSave:       "BGSAVE",
	OpBgRewriteAOF: "BGREWRITEAOF",
	OpShutdown:     "SHUTDOWN",
	OpSlaveOf:      "SLAVEOF",
	OpReplicaOf:    "REPLICAOF",
	OpDebug:        "DEBUG",
	OpMemory:       "MEMORY",
	OpLatency:      "LATENCY",
	OpSlowLog:      "SLOWLOG",
	OpACL:          "ACL",
	OpLolwut:       "LOLWUT",
	OpFailover:     "FAILOVER",
	OpCommandLog:   "COMMANDLOG",

	OpModule:          "MODULE",
	OpRespPassthrough: "RESP_PASSTHROUGH",
}

// NameFor returns the canonical uppercased command name for op, or "UNKNOWN" if
// op has no entry in the name table.
func NameFor(op Opcode) string {
	if n, ok := names[op]; ok {
		return n
	}
	return "UNKNOWN"
}
