package consensus

import "fmt"

// Round identifies one proposal exchange in the consensus pipeline. A new
// block increments BlockRound; a rejected proposal for the same block
// increments RejectRound.
type Round struct {
	BlockRound  uint64
	RejectRound uint64
}

func (r Round) String() string {
	return fmt.Sprintf("(%d,%d)", r.BlockRound, r.RejectRound)
}

// Compare orders rounds by block round first, then by reject round. It
// returns a negative value if r precedes o, zero if equal, positive otherwise.
func (r Round) Compare(o Round) int {
	if r.BlockRound != o.BlockRound {
		if r.BlockRound < o.BlockRound {
			return -1
		}
		return 1
	}
	if r.RejectRound != o.RejectRound {
		if r.RejectRound < o.RejectRound {
			return -1
		}
		return 1
	}
	return 0
}
