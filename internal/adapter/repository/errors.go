package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"furnimarket/pkg/errors"
)

// classifyStoreError maps Firestore RPC failures onto the error kinds the
// rest of the system distinguishes. An InvalidArgument from the store means a
// field or index the deployment does not know about (schema mismatch), which
// callers surface very differently from plain unavailability.
func classifyStoreError(op string, err error) error {
	if err == nil {
		return nil
	}

	switch status.Code(err) {
	case codes.NotFound:
		return errors.NotFound(op, err)
	case codes.InvalidArgument, codes.FailedPrecondition:
		return errors.SchemaMismatch("store rejected "+op+": unknown field or missing index", err)
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return errors.Transport("store unreachable during "+op, err)
	default:
		return errors.Internal("store failure during "+op, err)
	}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
