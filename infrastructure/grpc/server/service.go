package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service exposed to the API layer.
// Requests and responses are google.protobuf.Struct documents.
const ServiceName = "relay.v1.BroadcastService"

const (
	MethodAddGroupMessage    = "AddGroupMessage"
	MethodEditGroupMessage   = "EditGroupMessage"
	MethodDeleteGroupMessage = "DeleteGroupMessage"
	MethodDeleteGroup        = "DeleteGroup"
	MethodAddMessage         = "AddMessage"
	MethodEditMessage        = "EditMessage"
	MethodDeleteMessage      = "DeleteMessage"
	MethodJoinGroup          = "JoinGroup"
	MethodLeaveGroup         = "LeaveGroup"
)

type BroadcastServiceServer interface {
	AddGroupMessage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EditGroupMessage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteGroupMessage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteGroup(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddMessage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EditMessage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteMessage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	JoinGroup(context.Context, *structpb.Struct) (*structpb.Struct, error)
	LeaveGroup(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// FullMethod returns the path used on the wire, e.g. /relay.v1.BroadcastService/JoinGroup.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

type unaryCall func(BroadcastServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(method string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error,
			interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(BroadcastServiceServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*structpb.Struct))
			})
		},
	}
}

var BroadcastServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BroadcastServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodAddGroupMessage, BroadcastServiceServer.AddGroupMessage),
		unary(MethodEditGroupMessage, BroadcastServiceServer.EditGroupMessage),
		unary(MethodDeleteGroupMessage, BroadcastServiceServer.DeleteGroupMessage),
		unary(MethodDeleteGroup, BroadcastServiceServer.DeleteGroup),
		unary(MethodAddMessage, BroadcastServiceServer.AddMessage),
		unary(MethodEditMessage, BroadcastServiceServer.EditMessage),
		unary(MethodDeleteMessage, BroadcastServiceServer.DeleteMessage),
		unary(MethodJoinGroup, BroadcastServiceServer.JoinGroup),
		unary(MethodLeaveGroup, BroadcastServiceServer.LeaveGroup),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "relay/v1/broadcast.proto",
}

func RegisterBroadcastServiceServer(s grpc.ServiceRegistrar, srv BroadcastServiceServer) {
	s.RegisterService(&BroadcastServiceDesc, srv)
}
