package ordering

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"

	"github.com/ledgernet/ordering/ordering/orderingpb"
	"github.com/ledgernet/ordering/pkg/logger"
	"github.com/ledgernet/ordering/pkg/worker"
)

type memTx []byte

func (t memTx) Marshal() ([]byte, error) { return t, nil }

type badTx struct{}

func (badTx) Marshal() ([]byte, error) { return nil, errBadTx }

var errBadTx = errors.New("unencodable transaction")

type memBatch []Transaction

func (b memBatch) Transactions() []Transaction { return b }

func batchOf(txs ...Transaction) Batch { return memBatch(txs) }

// fakeStub implements orderingpb.OnDemandOrderingClient in memory.
type fakeStub struct {
	mu        sync.Mutex
	sent      []*orderingpb.BatchesRequest
	sendErr   error
	sendCalls int

	proposalFn func(ctx context.Context, in *orderingpb.ProposalRequest) (*orderingpb.ProposalResponse, error)
}

func (f *fakeStub) SendBatches(ctx context.Context, in *orderingpb.BatchesRequest, opts ...grpc.CallOption) (*orderingpb.BatchesResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sendCalls++
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, in)
	return &orderingpb.BatchesResponse{}, nil
}

func (f *fakeStub) RequestProposal(ctx context.Context, in *orderingpb.ProposalRequest, opts ...grpc.CallOption) (*orderingpb.ProposalResponse, error) {
	return f.proposalFn(ctx, in)
}

func (f *fakeStub) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sendCalls
}

func (f *fakeStub) requests() []*orderingpb.BatchesRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*orderingpb.BatchesRequest, len(f.sent))
	copy(out, f.sent)
	return out
}

type testEnv struct {
	client *Client
	stub   *fakeStub
	events chan ProposalEvent
	keeper *ExecutorKeeper
	pool   *worker.Pool
}

func newTestEnv(t *testing.T, mutate func(*ClientConfig)) *testEnv {
	t.Helper()

	log := logger.NewDefaultLogger()
	keeper := NewExecutorKeeper(log)
	pool := worker.NewPool(4)
	pool.Run()

	stub := &fakeStub{}
	events := make(chan ProposalEvent, 16)
	cfg := ClientConfig{
		Stub:                   stub,
		ProposalFactory:        DefaultProposalFactory{},
		TimeProvider:           time.Now,
		ProposalRequestTimeout: time.Second,
		Logger:                 log,
		Callback:               func(ev ProposalEvent) { events <- ev },
		Keeper:                 keeper,
		Pool:                   pool,
		PeerKey:                "peer-a",
	}
	if mutate != nil {
		mutate(&cfg)
	}

	env := &testEnv{
		client: NewClient(cfg),
		stub:   stub,
		events: events,
		keeper: keeper,
		pool:   pool,
	}
	t.Cleanup(func() {
		keeper.Close()
		pool.Stop()
	})
	return env
}

func (e *testEnv) waitEvent(t *testing.T) ProposalEvent {
	t.Helper()
	select {
	case ev := <-e.events:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for proposal event")
		return ProposalEvent{}
	}
}

func (e *testEnv) waitSendCalls(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for e.stub.calls() < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d send calls, got %d", n, e.stub.calls())
		}
		time.Sleep(time.Millisecond)
	}
}
