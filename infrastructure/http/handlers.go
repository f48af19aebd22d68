package http

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/observability"
	"chat-relay/validation"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const defaultFailureLimit = 50

type Handler struct {
	log      *slog.Logger
	gateway  contract.IGateway
	journal  contract.IDeliveryJournal
	monitor  *observability.Monitor
	validate *validation.Validator
}

func NewHandler(log *slog.Logger, gateway contract.IGateway, journal contract.IDeliveryJournal,
	monitor *observability.Monitor) *Handler {
	return &Handler{
		log:      log,
		gateway:  gateway,
		journal:  journal,
		monitor:  monitor,
		validate: validation.New(),
	}
}

type messageRequest struct {
	Message json.RawMessage `json:"message" validate:"required,json_value"`
}

type groupURI struct {
	GroupID string `uri:"groupId" validate:"required,max=128"`
}

type groupMessageURI struct {
	GroupID   string `uri:"groupId" validate:"required,max=128"`
	MessageID string `uri:"messageId" validate:"required,max=128"`
}

type membershipURI struct {
	ConnectionID string `uri:"connectionId" validate:"required,max=128"`
	GroupID      string `uri:"groupId" validate:"required,max=128"`
}

type failureResponse struct {
	ConnectionID domain.ConnectionID `json:"connectionId"`
	Error        string              `json:"error"`
}

type deliveryResponse struct {
	EventID   string            `json:"eventId"`
	Kind      domain.EventKind  `json:"kind"`
	Scope     domain.Scope      `json:"scope"`
	Attempted int               `json:"attempted"`
	Delivered int               `json:"delivered"`
	Failures  []failureResponse `json:"failures"`
}

func toDeliveryResponse(report domain.DeliveryReport) deliveryResponse {
	return deliveryResponse{
		EventID:   report.Event.ID.String(),
		Kind:      report.Event.Kind,
		Scope:     report.Event.Scope,
		Attempted: report.Attempted,
		Delivered: report.Delivered,
		Failures: lo.Map(report.Failures, func(f domain.DeliveryFailure, _ int) failureResponse {
			return failureResponse{ConnectionID: f.ConnectionID, Error: lo.Ternary(f.Err != nil, fmt.Sprint(f.Err), "")}
		}),
	}
}

// ---------------------- GROUPS ----------------------

func (h *Handler) AddGroupMessage(ctx *gin.Context) {
	uri, body, ok := h.bindGroupMessage(ctx)
	if !ok {
		return
	}
	report := h.gateway.HandleGroupMessageAdd(ctx.Request.Context(), domain.GroupID(uri.GroupID), body.Message)
	ctx.JSON(http.StatusOK, toDeliveryResponse(report))
}

func (h *Handler) EditGroupMessage(ctx *gin.Context) {
	uri, body, ok := h.bindGroupMessage(ctx)
	if !ok {
		return
	}
	report := h.gateway.HandleGroupMessageEdit(ctx.Request.Context(), domain.GroupID(uri.GroupID), body.Message)
	ctx.JSON(http.StatusOK, toDeliveryResponse(report))
}

func (h *Handler) DeleteGroupMessage(ctx *gin.Context) {
	var uri groupMessageURI
	if !h.bindURI(ctx, &uri) {
		return
	}
	report := h.gateway.HandleGroupMessageDelete(ctx.Request.Context(), domain.GroupID(uri.GroupID), uri.MessageID)
	ctx.JSON(http.StatusOK, toDeliveryResponse(report))
}

func (h *Handler) DeleteGroup(ctx *gin.Context) {
	var uri groupURI
	if !h.bindURI(ctx, &uri) {
		return
	}
	report := h.gateway.HandleGroupDeleted(ctx.Request.Context(), domain.GroupID(uri.GroupID))
	ctx.JSON(http.StatusOK, toDeliveryResponse(report))
}

// ---------------------- BROADCAST ----------------------

func (h *Handler) AddMessage(ctx *gin.Context) {
	body, ok := h.bindMessage(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, toDeliveryResponse(h.gateway.HandleAllMessageAdd(ctx.Request.Context(), body.Message)))
}

func (h *Handler) EditMessage(ctx *gin.Context) {
	body, ok := h.bindMessage(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, toDeliveryResponse(h.gateway.HandleAllMessageEdit(ctx.Request.Context(), body.Message)))
}

func (h *Handler) DeleteMessage(ctx *gin.Context) {
	body, ok := h.bindMessage(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, toDeliveryResponse(h.gateway.HandleAllMessageDelete(ctx.Request.Context(), body.Message)))
}

// ---------------------- MEMBERSHIP ----------------------

func (h *Handler) JoinGroup(ctx *gin.Context) {
	var uri membershipURI
	if !h.bindURI(ctx, &uri) {
		return
	}
	if err := h.gateway.HandleJoinGroup(domain.ConnectionID(uri.ConnectionID), domain.GroupID(uri.GroupID)); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *Handler) LeaveGroup(ctx *gin.Context) {
	var uri membershipURI
	if !h.bindURI(ctx, &uri) {
		return
	}
	h.gateway.HandleLeaveGroup(domain.ConnectionID(uri.ConnectionID), domain.GroupID(uri.GroupID))
	ctx.Status(http.StatusNoContent)
}

// ---------------------- ADMIN ----------------------

func (h *Handler) Stats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.monitor.Snapshot())
}

func (h *Handler) Failures(ctx *gin.Context) {
	limit := defaultFailureLimit
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			abortWithError(ctx, fmt.Errorf("%w: limit must be a positive integer", errors.ErrInvalidRequest))
			return
		}
		limit = parsed
	}
	records, err := h.journal.Recent(limit)
	if err != nil {
		h.log.Error("Unable to read delivery journal", "error", err)
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"failures": records})
}

// ---------------------- BINDING ----------------------

func (h *Handler) bindURI(ctx *gin.Context, uri any) bool {
	if err := ctx.ShouldBindUri(uri); err != nil {
		abortWithError(ctx, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err))
		return false
	}
	if err := h.validate.Struct(uri); err != nil {
		abortWithError(ctx, err)
		return false
	}
	return true
}

func (h *Handler) bindMessage(ctx *gin.Context) (messageRequest, bool) {
	var body messageRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		abortWithError(ctx, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err))
		return body, false
	}
	if err := h.validate.Struct(body); err != nil {
		abortWithError(ctx, err)
		return body, false
	}
	return body, true
}

func (h *Handler) bindGroupMessage(ctx *gin.Context) (groupURI, messageRequest, bool) {
	var uri groupURI
	if !h.bindURI(ctx, &uri) {
		return uri, messageRequest{}, false
	}
	body, ok := h.bindMessage(ctx)
	return uri, body, ok
}
