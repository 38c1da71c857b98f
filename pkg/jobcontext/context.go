package jobcontext

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KeyContext string

var (
	keyRunID        KeyContext = "run_id"
	keyRunKind      KeyContext = "run_kind"
	keyRunStartTime KeyContext = "run_start_time"
)

// RunMetadata holds metadata for a single pipeline run
type RunMetadata struct {
	RunID     uuid.UUID
	Kind      string
	StartTime time.Time
}

// RunBegin initializes a run context with a fresh run ID.
// A zero timeout keeps the parent deadline.
func RunBegin(parentCtx context.Context, kind string, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := parentCtx, context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(parentCtx, timeout)
	}

	ctx = context.WithValue(ctx, keyRunID, uuid.New())
	ctx = context.WithValue(ctx, keyRunKind, kind)
	ctx = context.WithValue(ctx, keyRunStartTime, time.Now())

	return ctx, cancel
}

// RunEnd executes fn with panic recovery so a misbehaving stage surfaces as an error
func RunEnd(ctx context.Context, fn func(context.Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic recovered: %v", p)
		}
	}()

	if ctx.Err() != nil {
		return fmt.Errorf("context cancelled before run: %w", ctx.Err())
	}

	return fn(ctx)
}

// GetRunID extracts run ID from context
func GetRunID(ctx context.Context) (uuid.UUID, bool) {
	runID, ok := ctx.Value(keyRunID).(uuid.UUID)
	return runID, ok
}

// GetRunKind extracts run kind from context
func GetRunKind(ctx context.Context) (string, bool) {
	kind, ok := ctx.Value(keyRunKind).(string)
	return kind, ok
}

// GetRunStartTime extracts run start time from context
func GetRunStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyRunStartTime).(time.Time)
	return startTime, ok
}

// GetRunMetadata extracts all run metadata from context
func GetRunMetadata(ctx context.Context) *RunMetadata {
	runID, _ := GetRunID(ctx)
	kind, _ := GetRunKind(ctx)
	startTime, _ := GetRunStartTime(ctx)

	return &RunMetadata{
		RunID:     runID,
		Kind:      kind,
		StartTime: startTime,
	}
}

// Fields returns zap fields describing the run, empty when ctx carries no run
func Fields(ctx context.Context) []zap.Field {
	runID, ok := GetRunID(ctx)
	if !ok {
		return nil
	}
	fields := []zap.Field{zap.String("run_id", runID.String())}
	if kind, ok := GetRunKind(ctx); ok && kind != "" {
		fields = append(fields, zap.String("run_kind", kind))
	}
	return fields
}

// Elapsed returns the time since the run started, zero when unknown
func Elapsed(ctx context.Context) time.Duration {
	startTime, ok := GetRunStartTime(ctx)
	if !ok {
		return 0
	}
	return time.Since(startTime)
}
