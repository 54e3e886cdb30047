// Package stringswitch emulates a switch statement over string labels,
// mapping each label to a value of an arbitrary result type.
//
// What sets it apart from a plain map lookup is that malformed switches
// do not compile. The builder moves through a sequence of distinct types
// whose method sets change as the switch is assembled, so the compiler
// rejects the common misuses a runtime check would only catch late:
//
//   - evaluating a switch with no cases and no default
//   - supplying the match parameter both at creation and at evaluation,
//     or at neither
//   - registering a second default
//
// The semantics match those of a switch statement: a parameter is
// required (either at creation or at evaluation), at least one case or
// default must exist, and defaults may not repeat.
//
// # Building a switch
//
// [For] captures the parameter up front; [New] defers it to Evaluate.
// Cases are added with When, the optional fallback with Default:
//
//	type Fruit int
//
//	const (
//		Apple Fruit = iota
//		Mango
//		Orange
//		Invalid Fruit = -1
//	)
//
//	func fromString(name string) Fruit {
//		return stringswitch.For[Fruit](name).
//			When("apple", Apple).
//			When("mango", Mango).
//			When("orange", Orange).
//			Default(Invalid).
//			Evaluate()
//	}
//
// # Result types
//
// The presence of a default decides the result type of Evaluate
// statically. With a default the result is R; without one it is
// (R, bool), where false reports that no case matched:
//
//	fruit, ok := stringswitch.New[Fruit]().
//		When("apple", Apple).
//		When("mango", Mango).
//		Evaluate(name)
//
// # Rejected at compile time
//
// The following do not compile:
//
//	// No cases or defaults registered: Evaluate does not exist yet.
//	stringswitch.For[Fruit](name).Evaluate()
//
//	// Parameter given twice: a bound switch has a zero-argument Evaluate.
//	stringswitch.For[Fruit](name).When("apple", Apple).Evaluate(other)
//
//	// Second default: Defaulted has no Default method.
//	stringswitch.New[Fruit]().Default(Invalid).Default(Orange)
//
// # Usage contract
//
// Builders are for single-owner construction-then-read use. Each
// type-changing call (the first When or Default on a [Switch] or
// [BoundSwitch], and Default on [Cases] or [BoundCases]) consumes its
// receiver; only the returned value may be used afterwards. When called
// on an accumulator returns the same receiver and may be chained freely.
// Once the last When or Default call has returned, Evaluate performs no
// mutation and may be called concurrently.
package stringswitch
