// Package errors provides coded errors for genesys-dice and their mapping to
// gRPC status codes.
//
// Errors carry a Code, a message for the caller, an optional cause and
// metadata naming the pool, die, symbol or roll session involved:
//
//	err := errors.InvalidArgumentf("%q is not a valid die short code", code).
//	    WithPool(shortCodes)
//
//	err := errors.NotFound("roll session not found").
//	    WithSession(entityID, sessionContext)
//
// Wrap keeps the code of a coded cause. Context cancellation becomes
// Canceled or DeadlineExceeded and anything else is Internal:
//
//	if err := repo.Update(ctx, session); err != nil {
//	    return errors.Wrap(err, "failed to update roll session")
//	}
//
// WrapWithCode re-classifies a cause:
//
//	if err := yaml.Unmarshal(data, &rolls); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeDataLoss, "failed to parse saved rolls")
//	}
//
// Config structs and handlers collect field problems with a
// ValidationBuilder and return a single InvalidArgument:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
//	errors.ValidateEnum("LogLevel", c.LogLevel, logLevels, vb)
//	return vb.Build()
//
// Handlers return ToGRPCError(err). Metadata is sent as an ErrorInfo
// detail and validation fields as a BadRequest detail, and FromGRPCError
// restores both on the client side.
package errors
