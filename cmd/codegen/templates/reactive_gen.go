package templates

import (
	"fmt"
	"strings"

	qtpl "github.com/valyala/quicktemplate"
)

// letters returns the first n uppercase type-parameter names, A, B, C
// and so on, matching the names spelled out by hand in
// reactive/nary_generated.go.
func letters(n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = string(rune('A' + i))
	}
	return out
}

// ReactiveGen renders Computed2..ComputedN and Effect2..EffectN for
// package reactive: one source-reading combiner per arity from 2 up
// to maxArity, since Go generics have no variadic type parameter
// list. The output is byte-for-byte the shape nary_generated.go
// already carries for maxArity 6; raising maxArity only adds more
// functions, it never changes the ones already there.
func ReactiveGen(maxArity int) string {
	bb := qtpl.AcquireByteBuffer()
	defer qtpl.ReleaseByteBuffer(bb)

	bb.Write([]byte("// Code generated by cmd/codegen. DO NOT EDIT.\n\n"))
	bb.Write([]byte("package reactive\n\n"))
	bb.Write([]byte("// Computed2 through Computed" + fmt.Sprint(maxArity) + " and Effect2 through Effect" + fmt.Sprint(maxArity) + " below exist\n"))
	bb.Write([]byte("// because Go generics have no variadic type parameter list: a\n"))
	bb.Write([]byte("// combiner over N typed sources needs N type parameters spelled out.\n"))
	bb.Write([]byte("// Each source is read through a (T, error) func value so a *Signal's\n"))
	bb.Write([]byte("// .Read and a *Computed's .Value can be passed interchangeably.\n\n"))

	for arity := 2; arity <= maxArity; arity++ {
		writeComputed(bb, arity)
		bb.Write([]byte("\n"))
	}
	for arity := 2; arity <= maxArity; arity++ {
		writeEffect(bb, arity)
		if arity != maxArity {
			bb.Write([]byte("\n"))
		}
	}

	return string(bb.B)
}

func writeComputed(bb *qtpl.ByteBuffer, arity int) {
	ls := letters(arity)
	typeParams := strings.Join(ls, ", ") + ", R comparable"

	var params, reads strings.Builder
	var argNames []string
	for i, l := range ls {
		lower := strings.ToLower(l)
		if i > 0 {
			params.WriteString(", ")
		}
		fmt.Fprintf(&params, "%s func() (%s, error)", lower, l)
		argNames = append(argNames, lower+"v")
	}

	fmt.Fprintf(bb, "func Computed%d[%s](ctx *Context, %s, fn func(%s, old R) (R, error)) *Computed[R] {\n",
		arity, typeParams, params.String(), combinerArgs(ls))
	bb.Write([]byte("\treturn NewComputed(ctx, func(old R) (R, error) {\n"))
	for i, l := range ls {
		lower := strings.ToLower(l)
		varName := argNames[i]
		fmt.Fprintf(&reads, "\t\t%s, err := %s()\n\t\tif err != nil {\n\t\t\treturn old, err\n\t\t}\n", varName, lower)
	}
	bb.Write([]byte(reads.String()))
	fmt.Fprintf(bb, "\t\treturn fn(%s, old)\n", strings.Join(argNames, ", "))
	bb.Write([]byte("\t})\n}\n"))
}

func writeEffect(bb *qtpl.ByteBuffer, arity int) {
	ls := letters(arity)
	typeParams := strings.Join(ls, ", ") + " any"

	var params strings.Builder
	var argNames []string
	for i, l := range ls {
		lower := strings.ToLower(l)
		if i > 0 {
			params.WriteString(", ")
		}
		fmt.Fprintf(&params, "%s func() (%s, error)", lower, l)
		argNames = append(argNames, lower+"v")
	}

	fmt.Fprintf(bb, "func Effect%d[%s](ctx *Context, %s, fn func(%s) (Cleanup, error)) (func(), error) {\n",
		arity, typeParams, params.String(), combinerArgs(ls))
	bb.Write([]byte("\treturn NewEffect(ctx, func() (Cleanup, error) {\n"))
	for i, l := range ls {
		lower := strings.ToLower(l)
		varName := argNames[i]
		fmt.Fprintf(bb, "\t\t%s, err := %s()\n\t\tif err != nil {\n\t\t\treturn nil, err\n\t\t}\n", varName, lower)
	}
	fmt.Fprintf(bb, "\t\treturn fn(%s)\n", strings.Join(argNames, ", "))
	bb.Write([]byte("\t})\n}\n"))
}

// combinerArgs renders the fn signature's leading "av A, bv B, ..."
// argument list from a letter set.
func combinerArgs(ls []string) string {
	parts := make([]string, len(ls))
	for i, l := range ls {
		lower := strings.ToLower(l)
		parts[i] = fmt.Sprintf("%sv %s", lower, l)
	}
	return strings.Join(parts, ", ")
}
