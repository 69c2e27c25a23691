package contract

import "github.com/vsyslabs/govsys/vsys"

// Type names a known contract build. Each type has a fixed table of callable
// functions with their expected argument kinds.
type Type int

const (
	TypeSystem Type = iota + 1
	TypeTokenNoSplit
	TypeTokenWithSplit
	TypeNFT
	TypeNFTV2
	TypeLock
	TypeAtomicSwap
	TypePayChan
	TypeEscrow
	TypeOption
	TypeStableSwap
)

func (t Type) String() string {
	switch t {
	case TypeSystem:
		return "system"
	case TypeTokenNoSplit:
		return "token"
	case TypeTokenWithSplit:
		return "token-with-split"
	case TypeNFT:
		return "nft"
	case TypeNFTV2:
		return "nft-v2"
	case TypeLock:
		return "lock"
	case TypeAtomicSwap:
		return "atomic-swap"
	case TypePayChan:
		return "payment-channel"
	case TypeEscrow:
		return "escrow"
	case TypeOption:
		return "option"
	case TypeStableSwap:
		return "stable-swap"
	default:
		return "unknown"
	}
}

// System contract functions.
const (
	SysSend     uint16 = 0
	SysDeposit  uint16 = 1
	SysWithdraw uint16 = 2
	SysTransfer uint16 = 3
)

// Token contract functions (without split).
const (
	TokSupersede uint16 = 0
	TokIssue     uint16 = 1
	TokDestroy   uint16 = 2
	TokSend      uint16 = 3
	TokTransfer  uint16 = 4
	TokDeposit   uint16 = 5
	TokWithdraw  uint16 = 6
)

// Token contract functions (with split). Split shifts every function after
// Destroy up by one.
const (
	TokSplitSupersede uint16 = 0
	TokSplitIssue     uint16 = 1
	TokSplitDestroy   uint16 = 2
	TokSplit          uint16 = 3
	TokSplitSend      uint16 = 4
	TokSplitTransfer  uint16 = 5
	TokSplitDeposit   uint16 = 6
	TokSplitWithdraw  uint16 = 7
)

// NFT contract functions.
const (
	NFTSupersede uint16 = 0
	NFTIssue     uint16 = 1
	NFTSend      uint16 = 2
	NFTTransfer  uint16 = 3
	NFTDeposit   uint16 = 4
	NFTWithdraw  uint16 = 5
)

// NFT v2 contract functions. UpdateList shifts every function after Issue up
// by one.
const (
	NFTV2Supersede  uint16 = 0
	NFTV2Issue      uint16 = 1
	NFTV2UpdateList uint16 = 2
	NFTV2Send       uint16 = 3
	NFTV2Transfer   uint16 = 4
	NFTV2Deposit    uint16 = 5
	NFTV2Withdraw   uint16 = 6
)

// Lock contract functions.
const (
	LockLock uint16 = 0
)

// Atomic swap contract functions.
const (
	SwapLock           uint16 = 0
	SwapSolvePuzzle    uint16 = 1
	SwapExpireWithdraw uint16 = 2
)

// Payment channel contract functions.
const (
	ChanCreateAndLoad  uint16 = 0
	ChanExtendExpiry   uint16 = 1
	ChanLoad           uint16 = 2
	ChanAbort          uint16 = 3
	ChanUnload         uint16 = 4
	ChanCollectPayment uint16 = 5
)

// Escrow contract functions.
const (
	EscrowSupersede        uint16 = 0
	EscrowCreate           uint16 = 1
	EscrowRecipientDeposit uint16 = 2
	EscrowJudgeDeposit     uint16 = 3
	EscrowPayerCancel      uint16 = 4
	EscrowRecipientCancel  uint16 = 5
	EscrowJudgeCancel      uint16 = 6
	EscrowSubmitWork       uint16 = 7
	EscrowApproveWork      uint16 = 8
	EscrowApplyToJudge     uint16 = 9
	EscrowJudge            uint16 = 10
	EscrowSubmitPenalty    uint16 = 11
	EscrowPayerRefund      uint16 = 12
	EscrowRecipientRefund  uint16 = 13
	EscrowCollect          uint16 = 14
)

// Option contract functions.
const (
	OptionSupersede uint16 = 0
	OptionActivate  uint16 = 1
	OptionMint      uint16 = 2
	OptionUnlock    uint16 = 3
	OptionExecute   uint16 = 4
	OptionCollect   uint16 = 5
)

// Stable swap contract functions.
const (
	StableSupersede        uint16 = 0
	StableSetOrder         uint16 = 1
	StableUpdateOrder      uint16 = 2
	StableOrderDeposit     uint16 = 3
	StableOrderWithdraw    uint16 = 4
	StableCloseOrder       uint16 = 5
	StableSwapBaseToTarget uint16 = 6
	StableSwapTargetToBase uint16 = 7
)

func kinds(ks ...vsys.EntryKind) []vsys.EntryKind { return ks }

func amounts(n int) []vsys.EntryKind {
	ks := make([]vsys.EntryKind, n)
	for i := range ks {
		ks[i] = vsys.EntryAmount
	}
	return ks
}

// funcTables maps each contract type to its functions' expected argument
// kinds, in call order.
var funcTables = map[Type]map[uint16][]vsys.EntryKind{
	TypeSystem: {
		SysSend:     kinds(vsys.EntryAddress, vsys.EntryAmount),
		SysDeposit:  kinds(vsys.EntryAddress, vsys.EntryCtrtAcnt, vsys.EntryAmount),
		SysWithdraw: kinds(vsys.EntryCtrtAcnt, vsys.EntryAddress, vsys.EntryAmount),
		SysTransfer: kinds(vsys.EntryAddress, vsys.EntryAddress, vsys.EntryAmount),
	},
	TypeTokenNoSplit: {
		TokSupersede: kinds(vsys.EntryAddress),
		TokIssue:     kinds(vsys.EntryAmount),
		TokDestroy:   kinds(vsys.EntryAmount),
		TokSend:      kinds(vsys.EntryAddress, vsys.EntryAmount),
		TokTransfer:  kinds(vsys.EntryAddress, vsys.EntryAddress, vsys.EntryAmount),
		TokDeposit:   kinds(vsys.EntryAddress, vsys.EntryCtrtAcnt, vsys.EntryAmount),
		TokWithdraw:  kinds(vsys.EntryCtrtAcnt, vsys.EntryAddress, vsys.EntryAmount),
	},
	TypeTokenWithSplit: {
		TokSplitSupersede: kinds(vsys.EntryAddress),
		TokSplitIssue:     kinds(vsys.EntryAmount),
		TokSplitDestroy:   kinds(vsys.EntryAmount),
		TokSplit:          kinds(vsys.EntryAmount),
		TokSplitSend:      kinds(vsys.EntryAddress, vsys.EntryAmount),
		TokSplitTransfer:  kinds(vsys.EntryAddress, vsys.EntryAddress, vsys.EntryAmount),
		TokSplitDeposit:   kinds(vsys.EntryAddress, vsys.EntryCtrtAcnt, vsys.EntryAmount),
		TokSplitWithdraw:  kinds(vsys.EntryCtrtAcnt, vsys.EntryAddress, vsys.EntryAmount),
	},
	TypeNFT: {
		NFTSupersede: kinds(vsys.EntryAddress),
		NFTIssue:     kinds(vsys.EntryString),
		NFTSend:      kinds(vsys.EntryAddress, vsys.EntryInt32),
		NFTTransfer:  kinds(vsys.EntryAddress, vsys.EntryAddress, vsys.EntryInt32),
		NFTDeposit:   kinds(vsys.EntryAddress, vsys.EntryCtrtAcnt, vsys.EntryInt32),
		NFTWithdraw:  kinds(vsys.EntryCtrtAcnt, vsys.EntryAddress, vsys.EntryInt32),
	},
	TypeNFTV2: {
		NFTV2Supersede:  kinds(vsys.EntryAddress),
		NFTV2Issue:      kinds(vsys.EntryString),
		NFTV2UpdateList: kinds(vsys.EntryAddress, vsys.EntryBool),
		NFTV2Send:       kinds(vsys.EntryAddress, vsys.EntryInt32),
		NFTV2Transfer:   kinds(vsys.EntryAddress, vsys.EntryAddress, vsys.EntryInt32),
		NFTV2Deposit:    kinds(vsys.EntryAddress, vsys.EntryCtrtAcnt, vsys.EntryInt32),
		NFTV2Withdraw:   kinds(vsys.EntryCtrtAcnt, vsys.EntryAddress, vsys.EntryInt32),
	},
	TypeLock: {
		LockLock: kinds(vsys.EntryTimestamp),
	},
	TypeAtomicSwap: {
		SwapLock:           kinds(vsys.EntryAmount, vsys.EntryAddress, vsys.EntryBytes, vsys.EntryTimestamp),
		SwapSolvePuzzle:    kinds(vsys.EntryBytes, vsys.EntryBytes),
		SwapExpireWithdraw: kinds(vsys.EntryBytes),
	},
	TypePayChan: {
		ChanCreateAndLoad:  kinds(vsys.EntryAddress, vsys.EntryAmount, vsys.EntryTimestamp),
		ChanExtendExpiry:   kinds(vsys.EntryBytes, vsys.EntryTimestamp),
		ChanLoad:           kinds(vsys.EntryBytes, vsys.EntryAmount),
		ChanAbort:          kinds(vsys.EntryBytes),
		ChanUnload:         kinds(vsys.EntryBytes),
		ChanCollectPayment: kinds(vsys.EntryBytes, vsys.EntryAmount, vsys.EntryBytes),
	},
	TypeEscrow: {
		EscrowSupersede:        kinds(vsys.EntryAddress),
		EscrowCreate:           append(kinds(vsys.EntryAddress), append(amounts(5), vsys.EntryTimestamp)...),
		EscrowRecipientDeposit: kinds(vsys.EntryBytes),
		EscrowJudgeDeposit:     kinds(vsys.EntryBytes),
		EscrowPayerCancel:      kinds(vsys.EntryBytes),
		EscrowRecipientCancel:  kinds(vsys.EntryBytes),
		EscrowJudgeCancel:      kinds(vsys.EntryBytes),
		EscrowSubmitWork:       kinds(vsys.EntryBytes),
		EscrowApproveWork:      kinds(vsys.EntryBytes),
		EscrowApplyToJudge:     kinds(vsys.EntryBytes),
		EscrowJudge:            kinds(vsys.EntryBytes, vsys.EntryAmount, vsys.EntryAmount),
		EscrowSubmitPenalty:    kinds(vsys.EntryBytes),
		EscrowPayerRefund:      kinds(vsys.EntryBytes),
		EscrowRecipientRefund:  kinds(vsys.EntryBytes),
		EscrowCollect:          kinds(vsys.EntryBytes),
	},
	TypeOption: {
		OptionSupersede: kinds(vsys.EntryAddress),
		OptionActivate:  amounts(3),
		OptionMint:      amounts(1),
		OptionUnlock:    amounts(1),
		OptionExecute:   amounts(1),
		OptionCollect:   amounts(1),
	},
	TypeStableSwap: {
		StableSupersede:        kinds(vsys.EntryAddress),
		StableSetOrder:         amounts(10),
		StableUpdateOrder:      append(kinds(vsys.EntryBytes), amounts(8)...),
		StableOrderDeposit:     kinds(vsys.EntryBytes, vsys.EntryAmount, vsys.EntryAmount),
		StableOrderWithdraw:    kinds(vsys.EntryBytes, vsys.EntryAmount, vsys.EntryAmount),
		StableCloseOrder:       kinds(vsys.EntryBytes),
		StableSwapBaseToTarget: kinds(vsys.EntryBytes, vsys.EntryAmount, vsys.EntryAmount, vsys.EntryAmount, vsys.EntryTimestamp),
		StableSwapTargetToBase: kinds(vsys.EntryBytes, vsys.EntryAmount, vsys.EntryAmount, vsys.EntryAmount, vsys.EntryTimestamp),
	},
}

// Functions returns the function table for t, or nil for an unknown type.
func Functions(t Type) map[uint16][]vsys.EntryKind {
	return funcTables[t]
}
