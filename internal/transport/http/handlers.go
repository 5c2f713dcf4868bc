package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "hexroom/internal/platform/errors"
	"hexroom/internal/room"
	"hexroom/internal/room/service"
)

type createRoomBody struct {
	Name string `json:"name"`
}

type joinRoomBody struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type kickPlayerBody struct {
	PlayerID string `json:"playerId"`
}

type intentBody struct {
	Intent         intentPayload `json:"intent"`
	IdempotencyKey string        `json:"idempotencyKey"`
}

type intentPayload struct {
	Type     string                `json:"type"`
	Location string                `json:"location,omitempty"`
	Card     string                `json:"card,omitempty"`
	Give     map[room.Resource]int `json:"give,omitempty"`
	Want     map[room.Resource]int `json:"want,omitempty"`
}

func (s *Server) createRoom(c *gin.Context) {
	var body createRoomBody
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, apperrors.New(apperrors.CodePlayerNameEmpty, "request body is malformed"))
		return
	}
	resp, err := s.coordinator.CreateRoom(c.Request.Context(), service.CreateRoomRequest{Name: body.Name})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"roomId": resp.RoomID, "code": resp.Code})
}

func (s *Server) joinRoom(c *gin.Context) {
	var body joinRoomBody
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, apperrors.New(apperrors.CodeRoomCodeInvalid, "request body is malformed"))
		return
	}
	resp, err := s.coordinator.JoinRoom(c.Request.Context(), service.JoinRoomRequest{
		Code: body.Code,
		Name: body.Name,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roomId": resp.RoomID})
}

func (s *Server) submitIntent(c *gin.Context) {
	var body intentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, apperrors.New(apperrors.CodeIntentInvalid, "request body is malformed"))
		return
	}
	err := s.coordinator.SubmitIntent(c.Request.Context(), service.SubmitIntentRequest{
		RoomID: c.Param("id"),
		Intent: service.Intent{
			Type:     service.IntentType(body.Intent.Type),
			Location: body.Intent.Location,
			Card:     room.CardKind(body.Intent.Card),
			Give:     body.Intent.Give,
			Want:     body.Intent.Want,
		},
		IdempotencyKey: body.IdempotencyKey,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "accepted"})
}

func (s *Server) leaveRoom(c *gin.Context) {
	err := s.coordinator.LeaveRoom(c.Request.Context(), service.LeaveRoomRequest{RoomID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "left"})
}

func (s *Server) kickPlayer(c *gin.Context) {
	var body kickPlayerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, apperrors.New(apperrors.CodePlayerIDEmpty, "request body is malformed"))
		return
	}
	err := s.coordinator.KickPlayer(c.Request.Context(), service.KickPlayerRequest{
		RoomID:   c.Param("id"),
		PlayerID: body.PlayerID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "kicked"})
}

func (s *Server) resetRoom(c *gin.Context) {
	err := s.coordinator.ResetRoom(c.Request.Context(), service.ResetRoomRequest{RoomID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

func (s *Server) roomLog(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}
	entries, err := s.coordinator.RoomLog(c.Request.Context(), service.RoomLogRequest{
		RoomID: c.Param("id"),
		Limit:  limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
