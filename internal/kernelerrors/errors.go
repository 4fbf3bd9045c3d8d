package kernelerrors

import "fmt"

// Error is the kernel's single error type. Every type-checking failure in
// the taxonomy is represented as one, carrying whatever fields are relevant
// to localizing and explaining the failure. Construct one with the New<Kind>
// helper matching the Kind; Data is exported so a caller rendering
// diagnostics (with source spans) can look up specific fields without a
// type switch.
type Error struct {
	Kind    Kind
	Message string
	Data    map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind Kind, data map[string]any) *Error {
	return &Error{Kind: kind, Message: descriptions[kind], Data: data}
}

func NewInvalidDeb(index, tconLen uint64) *Error {
	return newError(InvalidDeb, map[string]any{"index": index, "tcon_len": tconLen})
}

func NewInvalidVconIndex(vconIndex uint64, indName string, vconCount int) *Error {
	return newError(InvalidVconIndex, map[string]any{
		"vcon_index": vconIndex, "ind": indName, "vcon_count": vconCount,
	})
}

func NewUnexpectedNonTypeExpression() *Error {
	return newError(UnexpectedNonTypeExpression, nil)
}

func NewUniverseInconsistencyInIndDef(indName string, indLevel, offendingLevel uint64) *Error {
	return newError(UniverseInconsistencyInIndDef, map[string]any{
		"ind": indName, "ind_level": indLevel, "offending_level": offendingLevel,
	})
}

func NewWrongNumberOfIndexArguments(expected, actual int) *Error {
	return newError(WrongNumberOfIndexArguments, map[string]any{"expected": expected, "actual": actual})
}

func NewNonInductiveMatcheeType() *Error {
	return newError(NonInductiveMatcheeType, nil)
}

func NewWrongNumberOfMatchCases(expected, actual int) *Error {
	return newError(WrongNumberOfMatchCases, map[string]any{"expected": expected, "actual": actual})
}

func NewWrongMatchReturnTypeArity(expected, actual uint64) *Error {
	return newError(WrongMatchReturnTypeArity, map[string]any{"expected": expected, "actual": actual})
}

func NewWrongMatchCaseArity(caseIndex int, expected, actual uint64) *Error {
	return newError(WrongMatchCaseArity, map[string]any{
		"case_index": caseIndex, "expected": expected, "actual": actual,
	})
}

func NewTypeMismatch() *Error {
	return newError(TypeMismatch, nil)
}

func NewCalleeTypeIsNotAForExpression() *Error {
	return newError(CalleeTypeIsNotAForExpression, nil)
}

func NewWrongNumberOfAppArguments(expected, actual int) *Error {
	return newError(WrongNumberOfAppArguments, map[string]any{"expected": expected, "actual": actual})
}

func NewFunHasZeroParams() *Error {
	return newError(FunHasZeroParams, nil)
}

func NewAppHasZeroArgs() *Error {
	return newError(AppHasZeroArgs, nil)
}

func NewForHasZeroParams() *Error {
	return newError(ForHasZeroParams, nil)
}

func NewIllegalRecursiveCall(requiredArgIndex int, requiredSuperstruct uint64) *Error {
	return newError(IllegalRecursiveCall, map[string]any{
		"required_decreasing_arg_index": requiredArgIndex,
		"required_strict_superstruct":   requiredSuperstruct,
	})
}

func NewRecursiveFunParamInNonCalleePosition() *Error {
	return newError(RecursiveFunParamInNonCalleePosition, nil)
}

func NewDeclaredFunNonrecursiveButUsedRecursiveFunParam() *Error {
	return newError(DeclaredFunNonrecursiveButUsedRecursiveFunParam, nil)
}

func NewDecreasingArgIndexTooBig(index uint64, paramCount int) *Error {
	return newError(DecreasingArgIndexTooBig, map[string]any{"index": index, "param_count": paramCount})
}

func NewVconDefParamTypeFailsStrictPositivityCondition(vconIndex int, path []string) *Error {
	return newError(VconDefParamTypeFailsStrictPositivityCondition, map[string]any{
		"vcon_index": vconIndex, "path": path,
	})
}

func NewRecursiveIndParamAppearsInVconDefIndexArg(vconIndex, indexArgIndex int) *Error {
	return newError(RecursiveIndParamAppearsInVconDefIndexArg, map[string]any{
		"vcon_index": vconIndex, "index_arg_index": indexArgIndex,
	})
}

func NewErasabilityViolation() *Error {
	return newError(ErasabilityViolation, nil)
}
