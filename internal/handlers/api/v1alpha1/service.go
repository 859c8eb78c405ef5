package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified name of the dice service
const ServiceName = "genesys.api.v1alpha1.DiceService"

// DiceServiceServer is the server API for the dice service
type DiceServiceServer interface {
	RollPool(context.Context, *RollPoolRequest) (*RollPoolResponse, error)
	RollSaved(context.Context, *RollSavedRequest) (*RollPoolResponse, error)
	GetRollSession(context.Context, *GetRollSessionRequest) (*GetRollSessionResponse, error)
	ClearRollSession(context.Context, *ClearRollSessionRequest) (*ClearRollSessionResponse, error)
	GetOdds(context.Context, *GetOddsRequest) (*GetOddsResponse, error)
	ListSavedRolls(context.Context, *ListSavedRollsRequest) (*ListSavedRollsResponse, error)
	SaveRoll(context.Context, *SaveRollRequest) (*SaveRollResponse, error)
	DeleteSavedRoll(context.Context, *DeleteSavedRollRequest) (*DeleteSavedRollResponse, error)
}

// RegisterDiceServiceServer registers the dice service with a gRPC server
func RegisterDiceServiceServer(s grpc.ServiceRegistrar, srv DiceServiceServer) {
	s.RegisterService(&DiceServiceDesc, srv)
}

// unary adapts a typed handler method to a grpc.MethodDesc handler
func unary[Req any, Resp any](
	method string,
	call func(DiceServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(DiceServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + method,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(DiceServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// DiceServiceDesc describes the dice service for grpc.Server
var DiceServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DiceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("RollPool", DiceServiceServer.RollPool),
		unary("RollSaved", DiceServiceServer.RollSaved),
		unary("GetRollSession", DiceServiceServer.GetRollSession),
		unary("ClearRollSession", DiceServiceServer.ClearRollSession),
		unary("GetOdds", DiceServiceServer.GetOdds),
		unary("ListSavedRolls", DiceServiceServer.ListSavedRolls),
		unary("SaveRoll", DiceServiceServer.SaveRoll),
		unary("DeleteSavedRoll", DiceServiceServer.DeleteSavedRoll),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "genesys/api/v1alpha1/dice.json",
}

// DiceServiceClient is the client API for the dice service
type DiceServiceClient interface {
	RollPool(ctx context.Context, in *RollPoolRequest, opts ...grpc.CallOption) (*RollPoolResponse, error)
	RollSaved(ctx context.Context, in *RollSavedRequest, opts ...grpc.CallOption) (*RollPoolResponse, error)
	GetRollSession(ctx context.Context, in *GetRollSessionRequest, opts ...grpc.CallOption) (*GetRollSessionResponse, error)
	ClearRollSession(ctx context.Context, in *ClearRollSessionRequest, opts ...grpc.CallOption) (*ClearRollSessionResponse, error)
	GetOdds(ctx context.Context, in *GetOddsRequest, opts ...grpc.CallOption) (*GetOddsResponse, error)
	ListSavedRolls(ctx context.Context, in *ListSavedRollsRequest, opts ...grpc.CallOption) (*ListSavedRollsResponse, error)
	SaveRoll(ctx context.Context, in *SaveRollRequest, opts ...grpc.CallOption) (*SaveRollResponse, error)
	DeleteSavedRoll(ctx context.Context, in *DeleteSavedRollRequest, opts ...grpc.CallOption) (*DeleteSavedRollResponse, error)
}

type diceServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDiceServiceClient creates a dice service client that speaks JSON
func NewDiceServiceClient(cc grpc.ClientConnInterface) DiceServiceClient {
	return &diceServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *diceServiceClient) RollPool(ctx context.Context, in *RollPoolRequest, opts ...grpc.CallOption) (*RollPoolResponse, error) {
	return invoke[RollPoolResponse](ctx, c.cc, "RollPool", in, opts)
}

func (c *diceServiceClient) RollSaved(ctx context.Context, in *RollSavedRequest, opts ...grpc.CallOption) (*RollPoolResponse, error) {
	return invoke[RollPoolResponse](ctx, c.cc, "RollSaved", in, opts)
}

func (c *diceServiceClient) GetRollSession(ctx context.Context, in *GetRollSessionRequest, opts ...grpc.CallOption) (*GetRollSessionResponse, error) {
	return invoke[GetRollSessionResponse](ctx, c.cc, "GetRollSession", in, opts)
}

func (c *diceServiceClient) ClearRollSession(ctx context.Context, in *ClearRollSessionRequest, opts ...grpc.CallOption) (*ClearRollSessionResponse, error) {
	return invoke[ClearRollSessionResponse](ctx, c.cc, "ClearRollSession", in, opts)
}

func (c *diceServiceClient) GetOdds(ctx context.Context, in *GetOddsRequest, opts ...grpc.CallOption) (*GetOddsResponse, error) {
	return invoke[GetOddsResponse](ctx, c.cc, "GetOdds", in, opts)
}

func (c *diceServiceClient) ListSavedRolls(ctx context.Context, in *ListSavedRollsRequest, opts ...grpc.CallOption) (*ListSavedRollsResponse, error) {
	return invoke[ListSavedRollsResponse](ctx, c.cc, "ListSavedRolls", in, opts)
}

func (c *diceServiceClient) SaveRoll(ctx context.Context, in *SaveRollRequest, opts ...grpc.CallOption) (*SaveRollResponse, error) {
	return invoke[SaveRollResponse](ctx, c.cc, "SaveRoll", in, opts)
}

func (c *diceServiceClient) DeleteSavedRoll(ctx context.Context, in *DeleteSavedRollRequest, opts ...grpc.CallOption) (*DeleteSavedRollResponse, error) {
	return invoke[DeleteSavedRollResponse](ctx, c.cc, "DeleteSavedRoll", in, opts)
}
