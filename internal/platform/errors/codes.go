// Package errors provides structured error handling for coordinator operations.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Auth errors
	CodeUnauthenticated Code = "UNAUTHENTICATED"

	// Room errors
	CodeRoomNotFound      Code = "ROOM_NOT_FOUND"
	CodeRoomEnded         Code = "ROOM_ENDED"
	CodeRoomFull          Code = "ROOM_FULL"
	CodeRoomCodeExhausted Code = "ROOM_CODE_EXHAUSTED"
	CodeRoomIDEmpty       Code = "ROOM_ID_EMPTY"
	CodeRoomCodeInvalid   Code = "ROOM_CODE_INVALID"

	// Seat errors
	CodeSeatAlreadyTaken  Code = "SEAT_ALREADY_TAKEN"
	CodeSeatNotHeld       Code = "SEAT_NOT_HELD"
	CodeNoColorAvailable  Code = "NO_COLOR_AVAILABLE"
	CodePlayerNameEmpty   Code = "PLAYER_NAME_EMPTY"
	CodePlayerNameTooLong Code = "PLAYER_NAME_TOO_LONG"
	CodePlayerIDEmpty     Code = "PLAYER_ID_EMPTY"

	// Lifecycle errors
	CodeNotHost        Code = "NOT_HOST"
	CodeSelfKick       Code = "SELF_KICK"
	CodeGameInProgress Code = "GAME_IN_PROGRESS"

	// Intent errors
	CodeIntentUnsupported Code = "INTENT_UNSUPPORTED"
	CodeIntentInvalid     Code = "INTENT_INVALID"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeRoomIDEmpty,
		CodeRoomCodeInvalid,
		CodePlayerNameEmpty,
		CodePlayerNameTooLong,
		CodePlayerIDEmpty,
		CodeIntentInvalid:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeRoomEnded,
		CodeSeatNotHeld,
		CodeGameInProgress:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotFound,
		CodeRoomNotFound:
		return codes.NotFound

	// AlreadyExists - duplicate seat claim
	case CodeSeatAlreadyTaken:
		return codes.AlreadyExists

	// ResourceExhausted - no seats or codes left
	case CodeRoomFull,
		CodeRoomCodeExhausted:
		return codes.ResourceExhausted

	// PermissionDenied - caller lacks the host role
	case CodeNotHost,
		CodeSelfKick:
		return codes.PermissionDenied

	case CodeIntentUnsupported:
		return codes.Unimplemented

	case CodeUnauthenticated:
		return codes.Unauthenticated

	default:
		return codes.Internal
	}
}
