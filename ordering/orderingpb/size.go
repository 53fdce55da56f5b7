package orderingpb

// Serialized-size helpers in the shape protoc-gen-gogo emits. The batch
// dispatcher uses them to keep outbound requests under the wire bound
// without re-marshaling on every append.

func sov(x uint64) (n int) {
	for {
		n++
		x >>= 7
		if x == 0 {
			break
		}
	}
	return n
}

func (m *Round) Size() (n int) {
	if m == nil {
		return 0
	}
	if m.BlockRound != 0 {
		n += 1 + sov(m.BlockRound)
	}
	if m.RejectRound != 0 {
		n += 1 + sov(m.RejectRound)
	}
	return n
}

func (m *BatchesRequest) Size() (n int) {
	if m == nil {
		return 0
	}
	for _, b := range m.Transactions {
		l := len(b)
		n += 1 + l + sov(uint64(l))
	}
	return n
}

// TransactionFieldSize reports how much one encoded transaction adds to the
// serialized size of a BatchesRequest.
func TransactionFieldSize(tx []byte) int {
	l := len(tx)
	return 1 + l + sov(uint64(l))
}

func (m *Proposal) Size() (n int) {
	if m == nil {
		return 0
	}
	if m.Round != nil {
		l := m.Round.Size()
		n += 1 + l + sov(uint64(l))
	}
	if m.CreatedTime != 0 {
		n += 1 + sov(m.CreatedTime)
	}
	for _, b := range m.Transactions {
		l := len(b)
		n += 1 + l + sov(uint64(l))
	}
	return n
}
