package respb

// Core command opcodes, grouped by category in power-of-two-aligned sub-ranges.
// The numeric values and grouping mirror the reference protocol header exactly;
// see DESIGN.md for the grounding source.
const (
	// String commands: 0x0000-0x003F.
	OpGet         Opcode = 0x0000
	OpSet         Opcode = 0x0001
	OpAppend      Opcode = 0x0002
	OpDecr        Opcode = 0x0003
	OpDecrBy      Opcode = 0x0004
	OpGetDel      Opcode = 0x0005
	OpGetEx       Opcode = 0x0006
	OpGetRange    Opcode = 0x0007
	OpGetSet      Opcode = 0x0008
	OpIncr        Opcode = 0x0009
	OpIncrBy      Opcode = 0x000A
	OpIncrByFloat Opcode = 0x000B
	OpMGet        Opcode = 0x000C
	OpMSet        Opcode = 0x000D
	OpMSetNX      Opcode = 0x000E
	OpPSetEx      Opcode = 0x000F
	OpSetEx       Opcode = 0x0010
	OpSetNX       Opcode = 0x0011
	OpSetRange    Opcode = 0x0012
	OpStrlen      Opcode = 0x0013
	OpSubstr      Opcode = 0x0014
	OpLCS         Opcode = 0x0015
	OpDelIfEq     Opcode = 0x0016

	// List commands: 0x0040-0x007F.
	OpLPush      Opcode = 0x0040
	OpRPush      Opcode = 0x0041
	OpLPushX     Opcode = 0x004B
	OpRPushX     Opcode = 0x004C
	OpLPop       Opcode = 0x0042
	OpRPop       Opcode = 0x0043
	OpLLen       Opcode = 0x0044
	OpLRange     Opcode = 0x0045
	OpLIndex     Opcode = 0x0046
	OpLInsert    Opcode = 0x004A
	OpLRem       Opcode = 0x0048
	OpLSet       Opcode = 0x0047
	OpLTrim      Opcode = 0x0049
	OpLPos       Opcode = 0x0050
	OpRPopLPush  Opcode = 0x004D
	OpLMove      Opcode = 0x004E
	OpBLPop      Opcode = 0x0051
	OpBRPop      Opcode = 0x0052
	OpBRPopLPush Opcode = 0x0053
	OpBLMove     Opcode = 0x0054
	OpLMPop      Opcode = 0x004F
	OpBLMPop     Opcode = 0x0055

	// Set commands: 0x0080-0x00BF.
	OpSAdd        Opcode = 0x0080
	OpSRem        Opcode = 0x0081
	OpSMembers    Opcode = 0x0082
	OpSCard       Opcode = 0x0084
	OpSIsMember   Opcode = 0x0083
	OpSMove       Opcode = 0x008D
	OpSPop        Opcode = 0x0085
	OpSRandMember Opcode = 0x0086
	OpSInter      Opcode = 0x0087
	OpSInterStore Opcode = 0x0088
	OpSUnion      Opcode = 0x0089
	OpSUnionStore Opcode = 0x008A
	OpSDiff       Opcode = 0x008B
	OpSDiffStore  Opcode = 0x008C
	OpSScan       Opcode = 0x008E
	OpSInterCard  Opcode = 0x008F
	OpSMisMember  Opcode = 0x0090

	// Sorted-set commands: 0x00C0-0x00FF.
	OpZAdd             Opcode = 0x00C0
	OpZRem             Opcode = 0x00C1
	OpZScore           Opcode = 0x00CD
	OpZIncrBy          Opcode = 0x00C4
	OpZCard            Opcode = 0x00C2
	OpZCount           Opcode = 0x00C3
	OpZRange           Opcode = 0x00C5
	OpZRangeByScore    Opcode = 0x00C6
	OpZRangeByLex      Opcode = 0x00C7
	OpZRevRange        Opcode = 0x00C8
	OpZRevRangeByScore Opcode = 0x00C9
	OpZRevRangeByLex   Opcode = 0x00CA
	OpZRank            Opcode = 0x00CB
	OpZRevRank         Opcode = 0x00CC
	OpZRemRangeByRank  Opcode = 0x00CF
	OpZRemRangeByScore Opcode = 0x00D0
	OpZRemRangeByLex   Opcode = 0x00D1
	OpZLexCount        Opcode = 0x00D2
	OpZMScore          Opcode = 0x00CE
	OpZPopMin          Opcode = 0x00D3
	OpZPopMax          Opcode = 0x00D4
	OpBZPopMin         Opcode = 0x00D5
	OpBZPopMax         Opcode = 0x00D6
	OpZRandMember      Opcode = 0x00D7
	OpZDiff            Opcode = 0x00D8
	OpZDiffStore       Opcode = 0x00D9
	OpZInter           Opcode = 0x00DA
	OpZInterStore      Opcode = 0x00DB
	OpZInterCard       Opcode = 0x00DC
	OpZUnion           Opcode = 0x00DD
	OpZUnionStore      Opcode = 0x00DE
	OpZScan            Opcode = 0x00DF
	OpZMPop            Opcode = 0x00E0
	OpBZMPop           Opcode = 0x00E1
	OpZRangeStore      Opcode = 0x00E2

	// Hash commands: 0x0100-0x013F.
	OpHSet         Opcode = 0x0100
	OpHGet         Opcode = 0x0101
	OpHDel         Opcode = 0x0105
	OpHExists      Opcode = 0x0106
	OpHGetAll      Opcode = 0x0104
	OpHKeys        Opcode = 0x0109
	OpHVals        Opcode = 0x010A
	OpHLen         Opcode = 0x010B
	OpHMGet        Opcode = 0x0103
	OpHMSet        Opcode = 0x0102
	OpHSetNX       Opcode = 0x010C
	OpHIncrBy      Opcode = 0x0107
	OpHIncrByFloat Opcode = 0x0108
	OpHStrlen      Opcode = 0x010D
	OpHScan        Opcode = 0x010E
	OpHRandField   Opcode = 0x010F
	OpHExpire      Opcode = 0x0110
	OpHPExpire     Opcode = 0x0113
	OpHExpireAt    Opcode = 0x0111
	OpHPExpireAt   Opcode = 0x0114
	OpHPersist     Opcode = 0x0118
	OpHTTL         Opcode = 0x0117
	OpHPTTL        Opcode = 0x0116
	OpHExpireTime  Opcode = 0x0112
	OpHPExpireTime Opcode = 0x0115
	OpHGetEx       Opcode = 0x0119
	OpHSetEx       Opcode = 0x011A

	// Bitmap commands: 0x0140-0x015F.
	OpSetBit     Opcode = 0x0140
	OpGetBit     Opcode = 0x0141
	OpBitCount   Opcode = 0x0142
	OpBitPos     Opcode = 0x0143
	OpBitOp      Opcode = 0x0144
	OpBitField   Opcode = 0x0145
	OpBitFieldRO Opcode = 0x0146

	// HyperLogLog commands: 0x0160-0x017F.
	OpPFAdd      Opcode = 0x0160
	OpPFCount    Opcode = 0x0161
	OpPFMerge    Opcode = 0x0162
	OpPFDebug    Opcode = 0x0163
	OpPFSelfTest Opcode = 0x0164

	// Geospatial commands: 0x0180-0x01BF.
	OpGeoAdd           Opcode = 0x0180
	OpGeoDist          Opcode = 0x0181
	OpGeoHash          Opcode = 0x0182
	OpGeoPos           Opcode = 0x0183
	OpGeoRadius        Opcode = 0x0184
	OpGeoRadiusByMem   Opcode = 0x0185
	OpGeoRadiusRO      Opcode = 0x0186
	OpGeoRadiusByMemRO Opcode = 0x0187
	OpGeoSearch        Opcode = 0x0188
	OpGeoSearchStore   Opcode = 0x0189

	// Stream commands: 0x01C0-0x01FF.
	OpXAdd       Opcode = 0x01C0
	OpXLen       Opcode = 0x01C1
	OpXRange     Opcode = 0x01C2
	OpXRevRange  Opcode = 0x01C3
	OpXRead      Opcode = 0x01C4
	OpXReadGroup Opcode = 0x01C5
	OpXDel       Opcode = 0x01C6
	OpXTrim      Opcode = 0x01C7
	OpXAck       Opcode = 0x01C8
	OpXPending   Opcode = 0x01C9
	OpXClaim     Opcode = 0x01CA
	OpXAutoClaim Opcode = 0x01CB
	OpXInfo      Opcode = 0x01CC
	OpXGroup     Opcode = 0x01CD
	OpXSetID     Opcode = 0x01CE

	// Pub/Sub commands: 0x0200-0x023F.
	OpPublish      Opcode = 0x0200
	OpSubscribe    Opcode = 0x0201
	OpUnsubscribe  Opcode = 0x0202
	OpPSubscribe   Opcode = 0x0203
	OpPUnsubscribe Opcode = 0x0204
	OpPubSub       Opcode = 0x0205
	OpSPublish     Opcode = 0x0206
	OpSSubscribe   Opcode = 0x0207
	OpSUnsubscribe Opcode = 0x0208

	// Transaction commands: 0x0240-0x025F.
	OpMulti   Opcode = 0x0240
	OpExec    Opcode = 0x0241
	OpDiscard Opcode = 0x0242
	OpWatch   Opcode = 0x0243
	OpUnwatch Opcode = 0x0244

	// Scripting and function commands: 0x0260-0x029F.
	OpEval      Opcode = 0x0260
	OpEvalSha   Opcode = 0x0261
	OpEvalRO    Opcode = 0x0262
	OpEvalShaRO Opcode = 0x0263
	OpFCall     Opcode = 0x0265
	OpFCallRO   Opcode = 0x0266
	OpScript    Opcode = 0x0264
	OpFunction  Opcode = 0x0267

	// Generic key commands: 0x02C0-0x02FF.
	OpDel         Opcode = 0x02C0
	OpExists      Opcode = 0x02C2
	OpExpire      Opcode = 0x02C3
	OpExpireAt    Opcode = 0x02C4
	OpPExpire     Opcode = 0x02C6
	OpPExpireAt   Opcode = 0x02C7
	OpTTL         Opcode = 0x02C9
	OpPTTL        Opcode = 0x02CA
	OpPersist     Opcode = 0x02CB
	OpRename      Opcode = 0x02CF
	OpRenameNX    Opcode = 0x02D0
	OpRandomKey   Opcode = 0x02CE
	OpKeys        Opcode = 0x02CC
	OpScan        Opcode = 0x02CD
	OpType        Opcode = 0x02D1
	OpTouch       Opcode = 0x02D9
	OpUnlink      Opcode = 0x02C1
	OpDump        Opcode = 0x02D2
	OpRestore     Opcode = 0x02D3
	OpMigrate     Opcode = 0x02D4
	OpMove        Opcode = 0x02D5
	OpCopy        Opcode = 0x02D6
	OpSort        Opcode = 0x02D7
	OpSortRO      Opcode = 0x02D8
	OpObject      Opcode = 0x02DA
	OpExpireTime  Opcode = 0x02C5
	OpPExpireTime Opcode = 0x02C8
	OpWait        Opcode = 0x02DB
	OpWaitAOF     Opcode = 0x02DC

	// Connection management commands: 0x0300-0x033F.
	OpPing   Opcode = 0x0300
	OpEcho   Opcode = 0x0301
	OpAuth   Opcode = 0x0302
	OpSelect Opcode = 0x0303
	OpSwapDB Opcode = 0x03DA // lies in the server-management range below
	OpQuit   Opcode = 0x0304
	OpHello  Opcode = 0x0305
	OpReset  Opcode = 0x0306
	OpClient Opcode = 0x0307

	// Cluster management commands: 0x0340-0x037F.
	OpCluster   Opcode = 0x0340
	OpReadOnly  Opcode = 0x0341
	OpReadWrite Opcode = 0x0342
	OpAsking    Opcode = 0x0343

	// Server management commands: 0x03C0-0x03FF.
	OpDBSize       Opcode = 0x03C0
	OpFlushDB      Opcode = 0x03C1
	OpFlushAll     Opcode = 0x03C2
	OpInfo         Opcode = 0x03C8
	OpConfig       Opcode = 0x03C9
	OpCommand      Opcode = 0x03CA
	OpTime         Opcode = 0x03CB
	OpLastSave     Opcode = 0x03C6
	OpSave         Opcode = 0x03C3
	OpBgSave       Opcode = 0x03C4
	OpBgRewriteAOF Opcode = 0x03C5
	OpShutdown     Opcode = 0x03C7
	OpSlaveOf      Opcode = 0x03CE
	OpReplicaOf    Opcode = 0x03CD
	OpDebug        Opcode = 0x03D0
	OpMemory       Opcode = 0x03D6
	OpLatency      Opcode = 0x03D5
	OpSlowLog      Opcode = 0x03D4
	OpACL          Opcode = 0x03D8
	OpLolwut       Opcode = 0x03DB
	OpFailover     Opcode = 0x03D9
	OpCommandLog   Opcode = 0x03DD
)
