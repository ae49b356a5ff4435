// Package apiconsts holds the protocol constants shared with the BlockStor
// controller: api-call tags, return-code category masks, default ports, and
// well-known property values. The values mirror the controller's message
// definitions and must not be changed independently.
package apiconsts

// API call tags. Each request and reply frame names its kind with one of
// these tags in the header sub-message.
const (
	APIReply   = "Reply"
	APIVersion = "ApiVersion"

	APICrtNode = "CrtNode"
	APIModNode = "ModNode"
	APIDelNode = "DelNode"
	APILstNode = "LstNode"

	APICrtNetIf = "CrtNetIf"
	APIModNetIf = "ModNetIf"
	APIDelNetIf = "DelNetIf"

	APICrtStorPoolDfn = "CrtStorPoolDfn"
	APIModStorPoolDfn = "ModStorPoolDfn"
	APIDelStorPoolDfn = "DelStorPoolDfn"
	APILstStorPoolDfn = "LstStorPoolDfn"

	APICrtStorPool = "CrtStorPool"
	APIDelStorPool = "DelStorPool"
	APILstStorPool = "LstStorPool"

	APICrtRscDfn = "CrtRscDfn"
	APIModRscDfn = "ModRscDfn"
	APIDelRscDfn = "DelRscDfn"
	APILstRscDfn = "LstRscDfn"

	APICrtVlmDfn = "CrtVlmDfn"
	APIModVlmDfn = "ModVlmDfn"
	APIDelVlmDfn = "DelVlmDfn"

	APICrtRsc = "CrtRsc"
	APIDelRsc = "DelRsc"
	APILstRsc = "LstRsc"
)

// Return-code category masks. Controller return codes are 64-bit bitfields;
// the three categories are tested in order (error wins, then warning, then
// info) and the absence of all three means success.
const (
	MaskError uint64 = 0xC000000000000000
	MaskWarn  uint64 = 0x8000000000000000
	MaskInfo  uint64 = 0x4000000000000000
)

// Default ports per communication role.
const (
	DfltCtrlPortPlain = 3376
	DfltCtrlPortSSL   = 3377
	DfltStltPortPlain = 3366
)

// Node types.
const (
	ValNodeTypeCtrl = "Controller"
	ValNodeTypeStlt = "Satellite"
	ValNodeTypeCmbd = "Combined"
	ValNodeTypeAux  = "Auxiliary"
)

// Network communication types.
const (
	ValNetcomTypePlain = "Plain"
	ValNetcomTypeSSL   = "SSL"
)

// Well-known property keys.
const (
	KeyStorPoolName = "StorPoolName"
)
