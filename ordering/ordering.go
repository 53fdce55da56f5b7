// Package ordering implements the client side of the on-demand ordering
// service: forwarding transaction batches to a remote ordering peer in
// size-bounded requests and fetching, per consensus round, the proposal that
// peer assembled.
package ordering

import (
	"time"

	"github.com/pkg/errors"

	"github.com/ledgernet/ordering/consensus"
	"github.com/ledgernet/ordering/ordering/orderingpb"
)

// Peer identifies a remote ordering participant. PubKey keys the per-peer
// send queue; Address is the dial target.
type Peer struct {
	PubKey  string
	Address string
}

// Transaction is a single transaction in whatever representation the caller
// keeps it in; the client only needs its wire encoding.
type Transaction interface {
	Marshal() ([]byte, error)
}

// Batch is an ordered group of transactions that must be forwarded together.
type Batch interface {
	Transactions() []Transaction
}

// Proposal is the transaction ordering a peer assembled for a round.
type Proposal struct {
	Round        consensus.Round
	CreatedTime  time.Time
	Transactions [][]byte
}

// ProposalEvent is delivered to the round driver exactly once per
// OnRequestProposal call. A nil Proposal means no proposal this round.
type ProposalEvent struct {
	Proposal *Proposal
	Round    consensus.Round
}

// ProposalFactory builds a validated Proposal from its wire form.
type ProposalFactory interface {
	Build(p *orderingpb.Proposal) (*Proposal, error)
}

// ConnectionFactory resolves the RPC stub for a peer.
type ConnectionFactory interface {
	CreateClient(peer Peer) (orderingpb.OnDemandOrderingClient, error)
}

// TimeProvider supplies the current time for request deadlines.
type TimeProvider func() time.Time

// DefaultProposalFactory builds proposals with structural validation only.
type DefaultProposalFactory struct{}

func (DefaultProposalFactory) Build(p *orderingpb.Proposal) (*Proposal, error) {
	if p.GetRound() == nil {
		return nil, errors.New("proposal is missing its round")
	}
	return &Proposal{
		Round:        roundFromProto(p.GetRound()),
		CreatedTime:  time.Unix(0, int64(p.GetCreatedTime())*int64(time.Millisecond)),
		Transactions: p.GetTransactions(),
	}, nil
}

func roundToProto(r consensus.Round) *orderingpb.Round {
	return &orderingpb.Round{
		BlockRound:  r.BlockRound,
		RejectRound: r.RejectRound,
	}
}

func roundFromProto(r *orderingpb.Round) consensus.Round {
	return consensus.Round{
		BlockRound:  r.GetBlockRound(),
		RejectRound: r.GetRejectRound(),
	}
}
