// Package service implements the session lifecycle coordinator. Every
// operation runs as one atomic transaction against the session store; all
// decisions are made from documents read inside that transaction.
package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"hexroom/internal/audit"
	apperrors "hexroom/internal/platform/errors"
	"hexroom/internal/platform/id"
	"hexroom/internal/platform/requestctx"
	"hexroom/internal/storage"
)

const tracerName = "hexroom/internal/room/service"

// ErrUnauthenticated indicates a request without a caller identity.
var ErrUnauthenticated = apperrors.New(apperrors.CodeUnauthenticated, "caller identity is required")

// ErrRoomIDEmpty indicates a missing room id.
var ErrRoomIDEmpty = apperrors.New(apperrors.CodeRoomIDEmpty, "room id is required")

// Coordinator implements the room lifecycle operations.
type Coordinator struct {
	store       storage.Store
	audit       *audit.Emitter
	logger      *zap.Logger
	tracer      trace.Tracer
	clock       func() time.Time
	idGenerator func() (string, error)
}

// New creates a Coordinator with default dependencies.
func New(store storage.Store, emitter *audit.Emitter, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		store:       store,
		audit:       emitter,
		logger:      logger,
		tracer:      otel.Tracer(tracerName),
		clock:       time.Now,
		idGenerator: id.NewID,
	}
}

// callerID resolves the authenticated caller from context.
func callerID(ctx context.Context) (string, error) {
	caller := requestctx.CallerIDFromContext(ctx)
	if caller == "" {
		return "", ErrUnauthenticated
	}
	return caller, nil
}
