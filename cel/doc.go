// Package cel lets compatibility rules be authored as CEL expressions
// instead of Go functions, which is convenient when rules are loaded from
// configuration. See https://github.com/google/cel-go and
// https://github.com/google/cel-spec for the expression language.
//
// The expression sees the two candidate partitions as the maps a and b,
// each with the fields name, parameter and value:
//
//	a.parameter == "Browser" && a.name == "Safari" ? b.parameter != "OS" || b.name == "macOS" : true
//
// To guarantee the symmetry the engine requires, the expression is
// evaluated in both argument orders and the results are combined with a
// logical AND; an expression therefore only needs to state a constraint
// from one side's point of view. An evaluation error makes the pair
// incompatible rather than aborting the run.
package cel
