package provider

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// MoveOutcome is how far a move got.
type MoveOutcome int

const (
	// Moved means the copy and the delete both succeeded.
	Moved MoveOutcome = iota
	// MoveCopyFailed means nothing changed; the source is untouched.
	MoveCopyFailed
	// MoveDeleteFailed means the target was written but the source still
	// exists, so the object is now stored twice.
	MoveDeleteFailed
)

func (o MoveOutcome) String() string {
	switch o {
	case MoveCopyFailed:
		return "copy_failed"
	case MoveDeleteFailed:
		return "copied_but_delete_failed"
	default:
		return "moved"
	}
}

// MoveError is returned by MoveObject when either step fails.
type MoveError struct {
	Outcome MoveOutcome
	Source  string
	Target  string
	Err     error
}

func (e *MoveError) Error() string {
	if e.Outcome == MoveDeleteFailed {
		return fmt.Sprintf("move %q to %q: copied but source delete failed: %v", e.Source, e.Target, e.Err)
	}
	return fmt.Sprintf("move %q to %q: copy failed: %v", e.Source, e.Target, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// MoveOutcomeOf returns the outcome a MoveObject error stands for.
func MoveOutcomeOf(err error) MoveOutcome {
	if err == nil {
		return Moved
	}
	var merr *MoveError
	if errors.As(err, &merr) {
		return merr.Outcome
	}
	return MoveCopyFailed
}

// MoveObject copies sourceKey to targetKey inside the bound bucket, applying
// meta and its resolved policy to the target, then deletes sourceKey.
//
// The move is not atomic. If the delete fails after a successful copy both
// objects remain and the returned *MoveError has Outcome MoveDeleteFailed;
// nothing is rolled back or cleaned up.
func (s *Service) MoveObject(ctx context.Context, sourceKey, targetKey string, meta ObjectMeta) error {
	opts := meta.putOptions()

	if err := s.client.CopyObject(ctx, s.scope.Bucket, sourceKey, targetKey, opts); err != nil {
		return &MoveError{Outcome: MoveCopyFailed, Source: sourceKey, Target: targetKey, Err: err}
	}

	if err := s.client.RemoveObject(ctx, s.scope.Bucket, sourceKey); err != nil {
		s.logger.Warn("Move left a duplicate object",
			zap.String("source", sourceKey),
			zap.String("target", targetKey),
			zap.Error(err))
		return &MoveError{Outcome: MoveDeleteFailed, Source: sourceKey, Target: targetKey, Err: err}
	}

	s.logger.Debug("Moved object",
		zap.String("source", sourceKey),
		zap.String("target", targetKey),
		zap.String("acl", opts.ACL),
		zap.String("storage_class", opts.StorageClass))
	return nil
}
