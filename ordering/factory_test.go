package ordering

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ledgernet/ordering/ordering/orderingpb"
	"github.com/ledgernet/ordering/pkg/logger"
	"github.com/ledgernet/ordering/pkg/worker"
)

type fakeConnections struct {
	stub orderingpb.OnDemandOrderingClient
	err  error
	seen []Peer
}

func (f *fakeConnections) CreateClient(peer Peer) (orderingpb.OnDemandOrderingClient, error) {
	f.seen = append(f.seen, peer)
	if f.err != nil {
		return nil, f.err
	}
	return f.stub, nil
}

func newTestFactory(t *testing.T, conns ConnectionFactory) *Factory {
	t.Helper()
	log := logger.NewDefaultLogger()
	keeper := NewExecutorKeeper(log)
	pool := worker.NewPool(2)
	pool.Run()
	t.Cleanup(func() {
		keeper.Close()
		pool.Stop()
	})
	return NewFactory(FactoryConfig{
		ProposalFactory:        DefaultProposalFactory{},
		TimeProvider:           time.Now,
		ProposalRequestTimeout: time.Second,
		Logger:                 log,
		Connections:            conns,
		Callback:               func(ProposalEvent) {},
		Keeper:                 keeper,
		Pool:                   pool,
	})
}

func TestFactoryCreatePropagatesDialError(t *testing.T) {
	conns := &fakeConnections{err: errors.New("no route to peer")}
	f := newTestFactory(t, conns)

	_, err := f.Create(Peer{PubKey: "peer-a", Address: "peer-a:50051"})
	if err == nil {
		t.Fatal("expected an error from Create")
	}
	if !strings.Contains(err.Error(), "peer-a") || !strings.Contains(err.Error(), "no route to peer") {
		t.Fatalf("error lacks context: %v", err)
	}
}

func TestFactoryCreateBindsPeerAndStub(t *testing.T) {
	stub := &fakeStub{}
	conns := &fakeConnections{stub: stub}
	f := newTestFactory(t, conns)

	c, err := f.Create(Peer{PubKey: "peer-a", Address: "peer-a:50051"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(conns.seen) != 1 || conns.seen[0].PubKey != "peer-a" {
		t.Fatalf("connection factory saw peers %+v", conns.seen)
	}

	c.OnBatches([]Batch{batchOf(memTx("tx-1"))})
	deadline := time.Now().Add(5 * time.Second)
	for stub.calls() < 1 {
		if time.Now().After(deadline) {
			t.Fatal("send never reached the stub resolved by the factory")
		}
		time.Sleep(time.Millisecond)
	}
}
