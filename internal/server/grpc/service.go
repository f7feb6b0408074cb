package grpc

import (
	"context"
	grpc2 "google.golang.org/grpc"
)

const serviceName = "litetable.analytics.v1.Analytics"

const (
	insertMethod         = "/" + serviceName + "/Insert"
	projectionMethod     = "/" + serviceName + "/Projection"
	aggregateMethod      = "/" + serviceName + "/Aggregate"
	describeSchemaMethod = "/" + serviceName + "/DescribeSchema"
	familyStateMethod    = "/" + serviceName + "/FamilyState"
)

// analyticsServer is the server side of the analytics service.
type analyticsServer interface {
	Insert(ctx context.Context, in *InsertRequest) (*InsertResponse, error)
	Projection(ctx context.Context, in *ProjectionRequest) (*ProjectionResponse, error)
	Aggregate(ctx context.Context, in *AggregateRequest) (*AggregateResponse, error)
	DescribeSchema(ctx context.Context, in *DescribeSchemaRequest) (*DescribeSchemaResponse, error)
	FamilyState(ctx context.Context, in *FamilyStateRequest) (*FamilyStateResponse, error)
}

var analyticsServiceDesc = grpc2.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*analyticsServer)(nil),
	Methods: []grpc2.MethodDesc{
		{MethodName: "Insert", Handler: unaryHandler(insertMethod, analyticsServer.Insert)},
		{MethodName: "Projection", Handler: unaryHandler(projectionMethod,
			analyticsServer.Projection)},
		{MethodName: "Aggregate", Handler: unaryHandler(aggregateMethod,
			analyticsServer.Aggregate)},
		{MethodName: "DescribeSchema", Handler: unaryHandler(describeSchemaMethod,
			analyticsServer.DescribeSchema)},
		{MethodName: "FamilyState", Handler: unaryHandler(familyStateMethod,
			analyticsServer.FamilyState)},
	},
	// messages go through the json codec, so there is no file descriptor to advertise
	Streams: []grpc2.StreamDesc{},
}

func registerAnalytics(s grpc2.ServiceRegistrar, srv analyticsServer) {
	s.RegisterService(&analyticsServiceDesc, srv)
}

// unaryHandler decodes the request, then runs call directly or through the interceptor.
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(analyticsServer, context.Context, *Req) (*Resp, error),
) func(srv any, ctx context.Context, dec func(any) error,
	interceptor grpc2.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error,
		interceptor grpc2.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(analyticsServer), ctx, in)
		}
		info := &grpc2.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(analyticsServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client calls the analytics service over any gRPC connection using the JSON codec.
type Client struct {
	cc grpc2.ClientConnInterface
}

func NewClient(cc grpc2.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) Insert(ctx context.Context, in *InsertRequest,
	opts ...grpc2.CallOption) (*InsertResponse, error) {
	return invoke[InsertResponse](ctx, c.cc, insertMethod, in, opts)
}

func (c *Client) Projection(ctx context.Context, in *ProjectionRequest,
	opts ...grpc2.CallOption) (*ProjectionResponse, error) {
	return invoke[ProjectionResponse](ctx, c.cc, projectionMethod, in, opts)
}

func (c *Client) Aggregate(ctx context.Context, in *AggregateRequest,
	opts ...grpc2.CallOption) (*AggregateResponse, error) {
	return invoke[AggregateResponse](ctx, c.cc, aggregateMethod, in, opts)
}

func (c *Client) DescribeSchema(ctx context.Context, in *DescribeSchemaRequest,
	opts ...grpc2.CallOption) (*DescribeSchemaResponse, error) {
	return invoke[DescribeSchemaResponse](ctx, c.cc, describeSchemaMethod, in, opts)
}

func (c *Client) FamilyState(ctx context.Context, in *FamilyStateRequest,
	opts ...grpc2.CallOption) (*FamilyStateResponse, error) {
	return invoke[FamilyStateResponse](ctx, c.cc, familyStateMethod, in, opts)
}

func invoke[Resp any](ctx context.Context, cc grpc2.ClientConnInterface, method string, in any,
	opts []grpc2.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc2.CallOption{grpc2.CallContentSubtype(codecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}
