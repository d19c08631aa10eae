package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	detailCodeKey    = "code"
	detailMessageKey = "message"
	detailMetaKey    = "meta"
)

// ToGRPCError converts an error to a gRPC status error. The domain code and
// metadata travel as a structpb.Struct detail so clients can recover them.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		st := status.New(customErr.Code.GRPCCode(), customErr.Message)

		if details, detailErr := errorDetails(customErr); detailErr == nil {
			if withDetails, wdErr := st.WithDetails(details); wdErr == nil {
				st = withDetails
			}
		}

		return st.Err()
	}

	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		details, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		fields := details.AsMap()
		if code, ok := fields[detailCodeKey].(string); ok && code != "" {
			customErr.Code = Code(code)
		}
		if meta, ok := fields[detailMetaKey].(map[string]any); ok {
			customErr.Meta = meta
		}
		break
	}

	return customErr
}

// GRPCStatus returns the gRPC status for any error
func GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}

	if st, ok := status.FromError(err); ok {
		return st
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return status.New(customErr.Code.GRPCCode(), customErr.Message)
	}

	return status.New(codes.Internal, err.Error())
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument, CodeInvalidDirection, CodeInvalidHeroName:
		return codes.InvalidArgument
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodeFailedPrecondition, CodeCharacterDefeated, CodeGameOver:
		return codes.FailedPrecondition
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	default:
		return codes.Unknown
	}
}

// grpcCodeToCode converts a gRPC code to our error code
func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Unavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}

// errorDetails packs an Error into a structpb.Struct. Metadata values that
// structpb cannot represent make the whole detail fail, and the status is
// sent without it.
func errorDetails(e *Error) (*structpb.Struct, error) {
	fields := map[string]any{
		detailCodeKey:    string(e.Code),
		detailMessageKey: e.Message,
	}
	if len(e.Meta) > 0 {
		fields[detailMetaKey] = e.Meta
	}
	return structpb.NewStruct(fields)
}
