package orderingpb

import (
	"context"

	"google.golang.org/grpc"
)

// OnDemandOrderingClient is the client API for the OnDemandOrdering service.
type OnDemandOrderingClient interface {
	// SendBatches forwards encoded transactions to the ordering peer.
	SendBatches(ctx context.Context, in *BatchesRequest, opts ...grpc.CallOption) (*BatchesResponse, error)
	// RequestProposal asks for the proposal assembled for one round.
	RequestProposal(ctx context.Context, in *ProposalRequest, opts ...grpc.CallOption) (*ProposalResponse, error)
}

type onDemandOrderingClient struct {
	cc *grpc.ClientConn
}

func NewOnDemandOrderingClient(cc *grpc.ClientConn) OnDemandOrderingClient {
	return &onDemandOrderingClient{cc}
}

func (c *onDemandOrderingClient) SendBatches(ctx context.Context, in *BatchesRequest, opts ...grpc.CallOption) (*BatchesResponse, error) {
	out := new(BatchesResponse)
	err := c.cc.Invoke(ctx, "/ordering.OnDemandOrdering/SendBatches", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *onDemandOrderingClient) RequestProposal(ctx context.Context, in *ProposalRequest, opts ...grpc.CallOption) (*ProposalResponse, error) {
	out := new(ProposalResponse)
	err := c.cc.Invoke(ctx, "/ordering.OnDemandOrdering/RequestProposal", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OnDemandOrderingServer is the server API for the OnDemandOrdering service.
type OnDemandOrderingServer interface {
	SendBatches(context.Context, *BatchesRequest) (*BatchesResponse, error)
	RequestProposal(context.Context, *ProposalRequest) (*ProposalResponse, error)
}

func RegisterOnDemandOrderingServer(s *grpc.Server, srv OnDemandOrderingServer) {
	s.RegisterService(&_OnDemandOrdering_serviceDesc, srv)
}

func _OnDemandOrdering_SendBatches_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BatchesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OnDemandOrderingServer).SendBatches(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ordering.OnDemandOrdering/SendBatches",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OnDemandOrderingServer).SendBatches(ctx, req.(*BatchesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OnDemandOrdering_RequestProposal_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProposalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OnDemandOrderingServer).RequestProposal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ordering.OnDemandOrdering/RequestProposal",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OnDemandOrderingServer).RequestProposal(ctx, req.(*ProposalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _OnDemandOrdering_serviceDesc = grpc.ServiceDesc{
	ServiceName: "ordering.OnDemandOrdering",
	HandlerType: (*OnDemandOrderingServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SendBatches",
			Handler:    _OnDemandOrdering_SendBatches_Handler,
		},
		{
			MethodName: "RequestProposal",
			Handler:    _OnDemandOrdering_RequestProposal_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ordering/orderingpb/ordering.proto",
}
