package regsyntax

import "fmt"

// Visitor holds optional callbacks for Visit. A nil field is skipped.
type Visitor struct {
	OnAlternativeEnter              func(*Alternative)
	OnAlternativeLeave              func(*Alternative)
	OnAssertionEnter                func(*Assertion)
	OnAssertionLeave                func(*Assertion)
	OnBackreferenceEnter            func(*Backreference)
	OnBackreferenceLeave            func(*Backreference)
	OnCapturingGroupEnter           func(*CapturingGroup)
	OnCapturingGroupLeave           func(*CapturingGroup)
	OnCharacterEnter                func(*Character)
	OnCharacterLeave                func(*Character)
	OnCharacterClassEnter           func(*CharacterClass)
	OnCharacterClassLeave           func(*CharacterClass)
	OnCharacterClassRangeEnter      func(*CharacterClassRange)
	OnCharacterClassRangeLeave      func(*CharacterClassRange)
	OnCharacterSetEnter             func(*CharacterSet)
	OnCharacterSetLeave             func(*CharacterSet)
	OnClassIntersectionEnter        func(*ClassIntersection)
	OnClassIntersectionLeave        func(*ClassIntersection)
	OnClassStringDisjunctionEnter   func(*ClassStringDisjunction)
	OnClassStringDisjunctionLeave   func(*ClassStringDisjunction)
	OnClassSubtractionEnter         func(*ClassSubtraction)
	OnClassSubtractionLeave         func(*ClassSubtraction)
	OnExpressionCharacterClassEnter func(*ExpressionCharacterClass)
	OnExpressionCharacterClassLeave func(*ExpressionCharacterClass)
	OnFlagsEnter                    func(*Flags)
	OnFlagsLeave                    func(*Flags)
	OnGroupEnter                    func(*Group)
	OnGroupLeave                    func(*Group)
	OnPatternEnter                  func(*Pattern)
	OnPatternLeave                  func(*Pattern)
	OnQuantifierEnter               func(*Quantifier)
	OnQuantifierLeave               func(*Quantifier)
	OnRegExpLiteralEnter            func(*RegExpLiteral)
	OnRegExpLiteralLeave            func(*RegExpLiteral)
	OnStringAlternativeEnter        func(*StringAlternative)
	OnStringAlternativeLeave        func(*StringAlternative)
}

// Visit walks the tree rooted at node depth-first, calling the Enter
// callback of a node before its children and the Leave callback after.
// Children are visited in source order.
func Visit(node Node, v *Visitor) {
	switch n := node.(type) {
	case *Alternative:
		call(v.OnAlternativeEnter, n)
		visitAll(n.Elements, v)
		call(v.OnAlternativeLeave, n)
	case *Assertion:
		call(v.OnAssertionEnter, n)
		visitAll(n.Alternatives, v)
		call(v.OnAssertionLeave, n)
	case *Backreference:
		call(v.OnBackreferenceEnter, n)
		call(v.OnBackreferenceLeave, n)
	case *CapturingGroup:
		call(v.OnCapturingGroupEnter, n)
		visitAll(n.Alternatives, v)
		call(v.OnCapturingGroupLeave, n)
	case *Character:
		call(v.OnCharacterEnter, n)
		call(v.OnCharacterLeave, n)
	case *CharacterClass:
		call(v.OnCharacterClassEnter, n)
		visitAll(n.Elements, v)
		call(v.OnCharacterClassLeave, n)
	case *CharacterClassRange:
		call(v.OnCharacterClassRangeEnter, n)
		Visit(n.Min, v)
		Visit(n.Max, v)
		call(v.OnCharacterClassRangeLeave, n)
	case *CharacterSet:
		call(v.OnCharacterSetEnter, n)
		call(v.OnCharacterSetLeave, n)
	case *ClassIntersection:
		call(v.OnClassIntersectionEnter, n)
		Visit(n.Left, v)
		Visit(n.Right, v)
		call(v.OnClassIntersectionLeave, n)
	case *ClassStringDisjunction:
		call(v.OnClassStringDisjunctionEnter, n)
		visitAll(n.Alternatives, v)
		call(v.OnClassStringDisjunctionLeave, n)
	case *ClassSubtraction:
		call(v.OnClassSubtractionEnter, n)
		Visit(n.Left, v)
		Visit(n.Right, v)
		call(v.OnClassSubtractionLeave, n)
	case *ExpressionCharacterClass:
		call(v.OnExpressionCharacterClassEnter, n)
		Visit(n.Expression, v)
		call(v.OnExpressionCharacterClassLeave, n)
	case *Flags:
		call(v.OnFlagsEnter, n)
		call(v.OnFlagsLeave, n)
	case *Group:
		call(v.OnGroupEnter, n)
		visitAll(n.Alternatives, v)
		call(v.OnGroupLeave, n)
	case *Pattern:
		call(v.OnPatternEnter, n)
		visitAll(n.Alternatives, v)
		call(v.OnPatternLeave, n)
	case *Quantifier:
		call(v.OnQuantifierEnter, n)
		Visit(n.Element, v)
		call(v.OnQuantifierLeave, n)
	case *RegExpLiteral:
		call(v.OnRegExpLiteralEnter, n)
		Visit(n.Pattern, v)
		Visit(n.Flags, v)
		call(v.OnRegExpLiteralLeave, n)
	case *StringAlternative:
		call(v.OnStringAlternativeEnter, n)
		visitAll(n.Elements, v)
		call(v.OnStringAlternativeLeave, n)
	default:
		panic(fmt.Sprintf("regsyntax: unknown node type %T", node))
	}
}

func call[T Node](f func(T), n T) {
	if f != nil {
		f(n)
	}
}

func visitAll[T Node](nodes []T, v *Visitor) {
	for _, n := range nodes {
		Visit(n, v)
	}
}
