package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func join(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

// leading prefixes s with a comma so it can follow a fixed first argument.
func leading(s string) string {
	if s == "" {
		return ""
	}
	return ", " + s
}

func argTypes(n int) string {
	return prefixedStrings("A", n)
}

func args(n int) string {
	return prefixedStrings("a", n)
}

func params(n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = "a" + strconv.Itoa(i) + " A" + strconv.Itoa(i)
	}
	return strings.Join(ps, ", ")
}

// tparams renders a type parameter list such as [T, A0, A1, R any].
func tparams(lead string, n int, trail ...string) string {
	list := join(append([]string{lead, argTypes(n)}, trail...)...)
	if list == "" {
		return ""
	}
	return "[" + list + " any]"
}

// targs renders the matching type argument list such as [A0, A1, R].
func targs(n int, trail ...string) string {
	list := join(append([]string{argTypes(n)}, trail...)...)
	if list == "" {
		return ""
	}
	return "[" + list + "]"
}

func funcType(n int, result string) string {
	ft := "func(" + argTypes(n) + ")"
	if result != "" {
		ft += " " + result
	}
	return ft
}
