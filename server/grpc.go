package server

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The service uses well-known wrapper types for its messages, which
// lets the descriptor below stand in for generated code:
//
//	service Engine {
//	  rpc SelectMove(google.protobuf.StringValue) returns (google.protobuf.StringValue);
//	  rpc Analyze(google.protobuf.StringValue) returns (google.protobuf.Struct);
//	}
//
// Requests are a position in notation, optionally followed by the side
// to move.
const serviceName = "gomokuarm.Engine"

type EngineServer interface {
	SelectMove(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	Analyze(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

var EngineServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*EngineServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SelectMove", Handler: selectMoveHandler},
		{MethodName: "Analyze", Handler: analyzeHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gomokuarm/engine.proto",
}

func selectMoveHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).SelectMove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/SelectMove"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServer).SelectMove(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func analyzeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).Analyze(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Analyze"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServer).Analyze(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// NewGRPCServer returns a gRPC server with the engine registered and
// a logging interceptor installed.
func (s *Server) NewGRPCServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.UnaryInterceptor(s.logUnary))
	gs := grpc.NewServer(opts...)
	gs.RegisterService(&EngineServiceDesc, s)
	return gs
}

func (s *Server) logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.log.Infow("rpc",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"elapsed", time.Since(start),
	)
	return resp, err
}

func (s *Server) SelectMove(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	if err := ctx.Err(); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	m, err := s.selectMove(req.GetValue())
	if err != nil {
		return nil, grpcError(err)
	}
	return wrapperspb.String(m.Point), nil
}

func (s *Server) Analyze(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if err := ctx.Err(); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	a, err := s.analyze(req.GetValue())
	if err != nil {
		return nil, grpcError(err)
	}
	cands := make([]any, 0, len(a.Candidates))
	for _, c := range a.Candidates {
		cands = append(cands, map[string]any{
			"point":   c.Point,
			"offense": c.Offense,
			"defense": c.Defense,
			"value":   c.Value,
		})
	}
	out, err := structpb.NewStruct(map[string]any{
		"side":       a.Side.String(),
		"best":       a.Best,
		"value":      a.Value,
		"evaluated":  a.Evaluated,
		"candidates": cands,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func grpcError(err error) error {
	switch classify(err) {
	case kindBadRequest:
		return status.Error(codes.InvalidArgument, err.Error())
	case kindNoMove:
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// Client calls a remote Engine.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Dial connects to addr without transport security.
func Dial(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	return grpc.NewClient(addr, opts...)
}

func (c *Client) SelectMove(ctx context.Context, req string, opts ...grpc.CallOption) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/SelectMove", wrapperspb.String(req), out, opts...); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}

func (c *Client) Analyze(ctx context.Context, req string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Analyze", wrapperspb.String(req), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
