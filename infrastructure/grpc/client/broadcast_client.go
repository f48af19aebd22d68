package client

import (
	"chat-relay/infrastructure/grpc/server"
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
)

// BroadcastClient calls relay.v1.BroadcastService on behalf of the API layer.
// Every call carries the bearer token in the authorization metadata.
type BroadcastClient struct {
	conn  grpc.ClientConnInterface
	token string
}

func NewBroadcastClient(conn grpc.ClientConnInterface, token string) *BroadcastClient {
	return &BroadcastClient{conn: conn, token: token}
}

func (c *BroadcastClient) AddGroupMessage(ctx context.Context, groupID string, message map[string]any) (*structpb.Struct, error) {
	return c.invoke(ctx, server.MethodAddGroupMessage, withMessage(map[string]any{"groupId": groupID}, message))
}

func (c *BroadcastClient) EditGroupMessage(ctx context.Context, groupID string, message map[string]any) (*structpb.Struct, error) {
	return c.invoke(ctx, server.MethodEditGroupMessage, withMessage(map[string]any{"groupId": groupID}, message))
}

func (c *BroadcastClient) DeleteGroupMessage(ctx context.Context, groupID, messageID string) (*structpb.Struct, error) {
	return c.invoke(ctx, server.MethodDeleteGroupMessage, map[string]any{"groupId": groupID, "messageId": messageID})
}

func (c *BroadcastClient) DeleteGroup(ctx context.Context, groupID string) (*structpb.Struct, error) {
	return c.invoke(ctx, server.MethodDeleteGroup, map[string]any{"groupId": groupID})
}

func (c *BroadcastClient) AddMessage(ctx context.Context, message map[string]any) (*structpb.Struct, error) {
	return c.invoke(ctx, server.MethodAddMessage, withMessage(map[string]any{}, message))
}

func (c *BroadcastClient) EditMessage(ctx context.Context, message map[string]any) (*structpb.Struct, error) {
	return c.invoke(ctx, server.MethodEditMessage, withMessage(map[string]any{}, message))
}

func (c *BroadcastClient) DeleteMessage(ctx context.Context, message map[string]any) (*structpb.Struct, error) {
	return c.invoke(ctx, server.MethodDeleteMessage, withMessage(map[string]any{}, message))
}

func (c *BroadcastClient) JoinGroup(ctx context.Context, connectionID, groupID string) error {
	_, err := c.invoke(ctx, server.MethodJoinGroup, map[string]any{"connectionId": connectionID, "groupId": groupID})
	return err
}

func (c *BroadcastClient) LeaveGroup(ctx context.Context, connectionID, groupID string) error {
	_, err := c.invoke(ctx, server.MethodLeaveGroup, map[string]any{"connectionId": connectionID, "groupId": groupID})
	return err
}

func (c *BroadcastClient) invoke(ctx context.Context, method string, fields map[string]any) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, server.FullMethod(method), in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// withMessage leaves the field out for a nil message so the server sees it missing.
func withMessage(fields map[string]any, message map[string]any) map[string]any {
	if message != nil {
		fields["message"] = message
	}
	return fields
}
