package server

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/validation"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// BroadcastServer is the gRPC face of the gateway.
// Callers are trusted backends: authorization happens in the interceptor,
// message bodies are forwarded untouched.
type BroadcastServer struct {
	log      *slog.Logger
	gateway  contract.IGateway
	validate *validation.Validator
}

func NewBroadcastServer(log *slog.Logger, gateway contract.IGateway) *BroadcastServer {
	return &BroadcastServer{log: log, gateway: gateway, validate: validation.New()}
}

type groupMessageRequest struct {
	GroupID string          `validate:"required,max=128"`
	Message json.RawMessage `validate:"required,json_value"`
}

type groupRequest struct {
	GroupID   string `validate:"required,max=128"`
	MessageID string `validate:"omitempty,max=128"`
}

type messageRequest struct {
	Message json.RawMessage `validate:"required,json_value"`
}

type membershipRequest struct {
	ConnectionID string `validate:"required,max=128"`
	GroupID      string `validate:"required,max=128"`
}

func (s *BroadcastServer) AddGroupMessage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := s.groupMessage(in)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toReportStruct(s.gateway.HandleGroupMessageAdd(ctx, domain.GroupID(req.GroupID), req.Message))
}

func (s *BroadcastServer) EditGroupMessage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := s.groupMessage(in)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toReportStruct(s.gateway.HandleGroupMessageEdit(ctx, domain.GroupID(req.GroupID), req.Message))
}

func (s *BroadcastServer) DeleteGroupMessage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := groupRequest{GroupID: stringField(in, "groupId"), MessageID: stringField(in, "messageId")}
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	if req.MessageID == "" {
		return nil, errors.MapToGRPCError(fmt.Errorf("%w: messageId is required", errors.ErrInvalidRequest))
	}
	return toReportStruct(s.gateway.HandleGroupMessageDelete(ctx, domain.GroupID(req.GroupID), req.MessageID))
}

func (s *BroadcastServer) DeleteGroup(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := groupRequest{GroupID: stringField(in, "groupId")}
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toReportStruct(s.gateway.HandleGroupDeleted(ctx, domain.GroupID(req.GroupID)))
}

func (s *BroadcastServer) AddMessage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := s.message(in)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toReportStruct(s.gateway.HandleAllMessageAdd(ctx, req.Message))
}

func (s *BroadcastServer) EditMessage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := s.message(in)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toReportStruct(s.gateway.HandleAllMessageEdit(ctx, req.Message))
}

func (s *BroadcastServer) DeleteMessage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := s.message(in)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toReportStruct(s.gateway.HandleAllMessageDelete(ctx, req.Message))
}

func (s *BroadcastServer) JoinGroup(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := s.membership(in)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	if err := s.gateway.HandleJoinGroup(domain.ConnectionID(req.ConnectionID), domain.GroupID(req.GroupID)); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &structpb.Struct{}, nil
}

func (s *BroadcastServer) LeaveGroup(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := s.membership(in)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	s.gateway.HandleLeaveGroup(domain.ConnectionID(req.ConnectionID), domain.GroupID(req.GroupID))
	return &structpb.Struct{}, nil
}

func (s *BroadcastServer) groupMessage(in *structpb.Struct) (groupMessageRequest, error) {
	message, err := messageField(in)
	if err != nil {
		return groupMessageRequest{}, err
	}
	req := groupMessageRequest{GroupID: stringField(in, "groupId"), Message: message}
	return req, s.validate.Struct(req)
}

func (s *BroadcastServer) message(in *structpb.Struct) (messageRequest, error) {
	message, err := messageField(in)
	if err != nil {
		return messageRequest{}, err
	}
	req := messageRequest{Message: message}
	return req, s.validate.Struct(req)
}

func (s *BroadcastServer) membership(in *structpb.Struct) (membershipRequest, error) {
	req := membershipRequest{
		ConnectionID: stringField(in, "connectionId"),
		GroupID:      stringField(in, "groupId"),
	}
	return req, s.validate.Struct(req)
}

func stringField(in *structpb.Struct, name string) string {
	return in.GetFields()[name].GetStringValue()
}

// messageField re-encodes the "message" field as JSON; a missing field
// yields a nil message.
func messageField(in *structpb.Struct) (json.RawMessage, error) {
	value, ok := in.GetFields()["message"]
	if !ok {
		return nil, nil
	}
	raw, err := protojson.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: message: %v", errors.ErrInvalidRequest, err)
	}
	return raw, nil
}

func toReportStruct(report domain.DeliveryReport) (*structpb.Struct, error) {
	failures := lo.Map(report.Failures, func(f domain.DeliveryFailure, _ int) any {
		return map[string]any{
			"connectionId": string(f.ConnectionID),
			"error":        lo.Ternary(f.Err != nil, fmt.Sprint(f.Err), ""),
		}
	})
	out, err := structpb.NewStruct(map[string]any{
		"eventId":   report.Event.ID.String(),
		"kind":      string(report.Event.Kind),
		"scope":     report.Event.Scope.String(),
		"attempted": report.Attempted,
		"delivered": report.Delivered,
		"failures":  failures,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return out, nil
}
