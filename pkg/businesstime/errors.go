package businesstime

import (
	bizerror "github.com/msto63/bizclock/foundation/core/error"
)

// Sentinel errors. Match with errors.Is; errors returned by the engine carry
// the same code plus details about the failing call.
var (
	ErrInvalidTimestamp      = bizerror.New("invalid timestamp").WithCode(bizerror.CodeInvalidTimestamp)
	ErrInvalidPrecision      = bizerror.New("precision must be positive").WithCode(bizerror.CodeInvalidPrecision)
	ErrInvalidConstraint     = bizerror.New("invalid constraint").WithCode(bizerror.CodeInvalidConstraint)
	ErrZeroLengthBusinessDay = bizerror.New("business day length must be positive").WithCode(bizerror.CodeZeroLengthBusinessDay)
	ErrBusinessDayTooLong    = bizerror.New("business day length exceeds 24h").WithCode(bizerror.CodeBusinessDayTooLong)
	ErrNoBusinessTime        = bizerror.New("no business time in calendar day").WithCode(bizerror.CodeNoBusinessTime)
	ErrStepLimitExceeded     = bizerror.New("step limit exceeded").WithCode(bizerror.CodeStepLimitExceeded)
)
