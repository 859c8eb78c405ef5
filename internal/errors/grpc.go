package errors

import (
	"fmt"
	"maps"
	"slices"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// ErrorDomain names this service in ErrorInfo details
const ErrorDomain = "genesys-dice"

// ToGRPCError converts an error to a gRPC status error. Metadata travels as
// an ErrorInfo detail and validation fields as a BadRequest detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(GetCode(err).GRPCCode(), err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if details := grpcDetails(customErr); len(details) > 0 {
		// a status that cannot carry the details still carries the code
		if detailed, err := st.WithDetails(details...); err == nil {
			st = detailed
		}
	}
	return st.Err()
}

func grpcDetails(e *Error) []protoadapt.MessageV1 {
	if len(e.Meta) == 0 {
		return nil
	}

	info := &errdetails.ErrorInfo{
		Reason:   e.Code.String(),
		Domain:   ErrorDomain,
		Metadata: make(map[string]string, len(e.Meta)),
	}
	var details []protoadapt.MessageV1

	for key, value := range e.Meta {
		fields, ok := value.(map[string][]string)
		if key != MetaValidation || !ok {
			info.Metadata[key] = fmt.Sprint(value)
			continue
		}

		badRequest := &errdetails.BadRequest{}
		for _, field := range slices.Sorted(maps.Keys(fields)) {
			for _, msg := range fields[field] {
				badRequest.FieldViolations = append(badRequest.FieldViolations,
					&errdetails.BadRequest_FieldViolation{Field: field, Description: msg})
			}
		}
		details = append(details, badRequest)
	}

	if len(info.Metadata) > 0 {
		details = append([]protoadapt.MessageV1{info}, details...)
	}
	return details
}

// FromGRPCError converts a gRPC status error back to a coded error,
// restoring metadata and validation fields from its details
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := New(grpcCodeToCode(st.Code()), st.Message())
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			for k, v := range d.GetMetadata() {
				customErr.WithMeta(k, v)
			}
		case *errdetails.BadRequest:
			fields := make(map[string][]string)
			for _, v := range d.GetFieldViolations() {
				fields[v.GetField()] = append(fields[v.GetField()], v.GetDescription())
			}
			customErr.WithMeta(MetaValidation, fields)
		}
	}
	return customErr
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeNotFound:
		return codes.NotFound
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeResourceExhausted:
		return codes.ResourceExhausted
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	case CodeDataLoss:
		return codes.DataLoss
	default:
		return codes.Unknown
	}
}

// grpcCodeToCode maps a gRPC code back; codes the service never sends
// become Internal
func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.NotFound:
		return CodeNotFound
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.ResourceExhausted:
		return CodeResourceExhausted
	case codes.Unavailable:
		return CodeUnavailable
	case codes.DataLoss:
		return CodeDataLoss
	default:
		return CodeInternal
	}
}
