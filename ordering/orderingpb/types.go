// Package orderingpb holds the wire types of the on-demand ordering service.
// The messages are maintained by hand in the shape protoc-gen-gogo emits so
// they stay compatible with the gRPC proto codec.
package orderingpb

import (
	"github.com/gogo/protobuf/proto"
)

// Round tags a proposal exchange with its consensus round.
type Round struct {
	BlockRound  uint64 `protobuf:"varint,1,opt,name=block_round,json=blockRound,proto3" json:"block_round,omitempty"`
	RejectRound uint64 `protobuf:"varint,2,opt,name=reject_round,json=rejectRound,proto3" json:"reject_round,omitempty"`
}

func (m *Round) Reset()         { *m = Round{} }
func (m *Round) String() string { return proto.CompactTextString(m) }
func (*Round) ProtoMessage()    {}

func (m *Round) GetBlockRound() uint64 {
	if m != nil {
		return m.BlockRound
	}
	return 0
}

func (m *Round) GetRejectRound() uint64 {
	if m != nil {
		return m.RejectRound
	}
	return 0
}

// BatchesRequest carries one or more encoded transactions to an ordering peer.
type BatchesRequest struct {
	Transactions [][]byte `protobuf:"bytes,1,rep,name=transactions,proto3" json:"transactions,omitempty"`
}

func (m *BatchesRequest) Reset()         { *m = BatchesRequest{} }
func (m *BatchesRequest) String() string { return proto.CompactTextString(m) }
func (*BatchesRequest) ProtoMessage()    {}

func (m *BatchesRequest) GetTransactions() [][]byte {
	if m != nil {
		return m.Transactions
	}
	return nil
}

// BatchesResponse is the empty acknowledgment of a SendBatches call.
type BatchesResponse struct {
}

func (m *BatchesResponse) Reset()         { *m = BatchesResponse{} }
func (m *BatchesResponse) String() string { return proto.CompactTextString(m) }
func (*BatchesResponse) ProtoMessage()    {}

// Proposal is the transaction ordering a peer assembled for a round.
type Proposal struct {
	Round        *Round   `protobuf:"bytes,1,opt,name=round,proto3" json:"round,omitempty"`
	CreatedTime  uint64   `protobuf:"varint,2,opt,name=created_time,json=createdTime,proto3" json:"created_time,omitempty"`
	Transactions [][]byte `protobuf:"bytes,3,rep,name=transactions,proto3" json:"transactions,omitempty"`
}

func (m *Proposal) Reset()         { *m = Proposal{} }
func (m *Proposal) String() string { return proto.CompactTextString(m) }
func (*Proposal) ProtoMessage()    {}

func (m *Proposal) GetRound() *Round {
	if m != nil {
		return m.Round
	}
	return nil
}

func (m *Proposal) GetCreatedTime() uint64 {
	if m != nil {
		return m.CreatedTime
	}
	return 0
}

func (m *Proposal) GetTransactions() [][]byte {
	if m != nil {
		return m.Transactions
	}
	return nil
}

// ProposalRequest asks a peer for the proposal of one round.
type ProposalRequest struct {
	Round *Round `protobuf:"bytes,1,opt,name=round,proto3" json:"round,omitempty"`
}

func (m *ProposalRequest) Reset()         { *m = ProposalRequest{} }
func (m *ProposalRequest) String() string { return proto.CompactTextString(m) }
func (*ProposalRequest) ProtoMessage()    {}

func (m *ProposalRequest) GetRound() *Round {
	if m != nil {
		return m.Round
	}
	return nil
}

// ProposalResponse optionally carries the assembled proposal. An unset
// proposal field is a meaningful outcome, not an error.
type ProposalResponse struct {
	Proposal *Proposal `protobuf:"bytes,1,opt,name=proposal,proto3" json:"proposal,omitempty"`
}

func (m *ProposalResponse) Reset()         { *m = ProposalResponse{} }
func (m *ProposalResponse) String() string { return proto.CompactTextString(m) }
func (*ProposalResponse) ProtoMessage()    {}

func (m *ProposalResponse) GetProposal() *Proposal {
	if m != nil {
		return m.Proposal
	}
	return nil
}

func init() {
	proto.RegisterType((*Round)(nil), "ordering.Round")
	proto.RegisterType((*BatchesRequest)(nil), "ordering.BatchesRequest")
	proto.RegisterType((*BatchesResponse)(nil), "ordering.BatchesResponse")
	proto.RegisterType((*Proposal)(nil), "ordering.Proposal")
	proto.RegisterType((*ProposalRequest)(nil), "ordering.ProposalRequest")
	proto.RegisterType((*ProposalResponse)(nil), "ordering.ProposalResponse")
}
