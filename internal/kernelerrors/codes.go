// Package kernelerrors provides the kernel's structured error taxonomy.
// Every failure the type checker can produce is one of these codes;
// callers (the surface layer, the REPL) attach source spans on top.
package kernelerrors

// Kind identifies one member of the error taxonomy.
type Kind string

const (
	InvalidDeb                                      Kind = "KER001"
	InvalidVconIndex                                Kind = "KER002"
	UnexpectedNonTypeExpression                     Kind = "KER003"
	UniverseInconsistencyInIndDef                   Kind = "KER004"
	WrongNumberOfIndexArguments                     Kind = "KER005"
	NonInductiveMatcheeType                         Kind = "KER006"
	WrongNumberOfMatchCases                         Kind = "KER007"
	WrongMatchReturnTypeArity                       Kind = "KER008"
	WrongMatchCaseArity                             Kind = "KER009"
	TypeMismatch                                    Kind = "KER010"
	CalleeTypeIsNotAForExpression                   Kind = "KER011"
	WrongNumberOfAppArguments                       Kind = "KER012"
	FunHasZeroParams                                Kind = "KER013"
	AppHasZeroArgs                                  Kind = "KER014"
	ForHasZeroParams                                Kind = "KER015"
	IllegalRecursiveCall                            Kind = "KER016"
	RecursiveFunParamInNonCalleePosition            Kind = "KER017"
	DeclaredFunNonrecursiveButUsedRecursiveFunParam Kind = "KER018"
	DecreasingArgIndexTooBig                        Kind = "KER019"
	VconDefParamTypeFailsStrictPositivityCondition  Kind = "KER020"
	RecursiveIndParamAppearsInVconDefIndexArg       Kind = "KER021"
	ErasabilityViolation                            Kind = "KER022"
)

// descriptions gives a short human-readable cause for each kind, used when a
// caller doesn't supply a more specific message.
var descriptions = map[Kind]string{
	InvalidDeb:                                      "de Bruijn index out of range for the current typing context",
	InvalidVconIndex:                                 "variant constructor index out of range for the inductive family",
	UnexpectedNonTypeExpression:                      "expression expected to be a type has a non-universe type",
	UniverseInconsistencyInIndDef:                    "an index or constructor param type exceeds the inductive's declared universe level",
	WrongNumberOfIndexArguments:                      "constructor def supplies the wrong number of index arguments",
	NonInductiveMatcheeType:                          "matchee's type does not normalize to an inductive family",
	WrongNumberOfMatchCases:                          "match case count does not equal the matchee's constructor count",
	WrongMatchReturnTypeArity:                        "match return type arity does not equal 1 + the family's index count",
	WrongMatchCaseArity:                              "match case arity does not equal its constructor's parameter count",
	TypeMismatch:                                     "two types disagree after normalization",
	CalleeTypeIsNotAForExpression:                    "application callee's type is not a dependent function type",
	WrongNumberOfAppArguments:                        "argument count does not equal the callee type's parameter count",
	FunHasZeroParams:                                 "function declares zero parameters",
	AppHasZeroArgs:                                   "application supplies zero arguments",
	ForHasZeroParams:                                 "dependent function type declares zero parameters",
	IllegalRecursiveCall:                             "recursive call does not descend on a strict substructure",
	RecursiveFunParamInNonCalleePosition:             "a function's own recursive reference is used outside callee position",
	DeclaredFunNonrecursiveButUsedRecursiveFunParam:  "a function declared nonrec refers to itself",
	DecreasingArgIndexTooBig:                         "decreasing_index names a parameter that doesn't exist",
	VconDefParamTypeFailsStrictPositivityCondition:   "a constructor parameter type violates strict positivity",
	RecursiveIndParamAppearsInVconDefIndexArg:        "a constructor's index argument mentions the inductive's own recursive self",
	ErasabilityViolation:                             "an erasable-typed match escapes into a non-erasable return type",
}
