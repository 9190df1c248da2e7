package main

import (
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/go-xmvec/xmvec/xm"
)

// row is one labelled result. op is "=" for exact results and "~" for
// estimates.
type row struct {
	label string
	op    string
	value any
}

type report struct {
	title string
	rows  []row
}

func (r *report) exact(label string, value any) {
	r.rows = append(r.rows, row{label: label, op: "=", value: value})
}

func (r *report) approx(label string, value any) {
	r.rows = append(r.rows, row{label: label, op: "~", value: value})
}

// write prints the rows with their operators aligned in one column.
func (r *report) write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n", r.title); err != nil {
		return err
	}
	width := lo.Max(lo.Map(r.rows, func(x row, _ int) int { return len(x.label) }))
	for _, x := range r.rows {
		if _, err := fmt.Fprintf(w, "  %-*s %s %v\n", width, x.label, x.op, x.value); err != nil {
			return err
		}
	}
	return nil
}

type section struct {
	name  string
	short string
	build func(opts *options) *report
}

var sections = []section{
	{"functions", "Elementwise functions, swizzles and saturate", functions},
	{"algebra", "Length, normalize, dot, cross, projection and angles", algebra},
	{"precision", "Floating point equality pitfalls", precision},
}

func functions(*options) *report {
	p := xm.NewVector(2, 2, 1, 0)
	q := xm.NewVector(2, -0.5, 0.5, 0.1)
	u := xm.NewVector(1, 2, 4, 8)
	v := xm.NewVector(-2, 1, -3, 2.5)
	w := xm.NewVector(0, xm.PiDiv4, xm.PiDiv2, xm.Pi)

	r := &report{title: "Vector functions"}
	r.exact("Abs(v)", xm.Abs(v))
	r.exact("Cos(w)", xm.Cos(w))
	r.exact("Log(u)", xm.Log(u))
	r.exact("Exp(p)", xm.Exp(p))
	r.exact("Pow(u, p)", xm.Pow(u, p))
	r.exact("Sqrt(u)", xm.Sqrt(u))
	r.exact("Swizzle(u, 2, 2, 1, 3)", xm.Swizzle(u, 2, 2, 1, 3))
	r.exact("Swizzle(u, 2, 1, 0, 3)", xm.Swizzle(u, 2, 1, 0, 3))
	r.exact("Multiply(u, v)", xm.Multiply(u, v))
	r.exact("Saturate(q)", xm.Saturate(q))
	r.exact("Min(p, v)", xm.Min(p, v))
	r.exact("Max(p, v)", xm.Max(p, v))
	return r
}

func algebra(*options) *report {
	n := xm.NewVector3(1, 0, 0)
	u := xm.NewVector3(1, 2, 3)
	v := xm.NewVector3(-2, 1, -3)
	w := xm.NewVector3(0.707, 0.707, 0)

	r := &report{title: "Vector algebra"}
	r.exact("n", n)
	r.exact("u", u)
	r.exact("v", v)
	r.exact("w", w)
	r.exact("u + v", u.Add(v))
	r.exact("u - v", u.Sub(v))
	r.exact("10 * u", u.Scale(10))
	r.exact("|u|", xm.Length3(u))
	r.approx("|u|", xm.Length3Est(u))
	r.exact("u / |u|", xm.Normalize3(u))
	r.approx("u / |u|", xm.Normalize3Est(u))
	r.exact("u . v", xm.Dot3(u, v))
	r.exact("u x v", xm.Cross3(u, v))

	proj, perp := xm.ComponentsFromNormal(w, n)
	r.exact("proj_n(w)", proj)
	r.exact("perp_n(w)", perp)
	r.exact("proj + perp == w", xm.Equal3(proj.Add(perp), w))
	r.exact("proj + perp != w", xm.NotEqual3(proj.Add(perp), w))
	r.exact("angle(proj, perp) deg", xm.ConvertToDegrees(xm.AngleBetween3(proj, perp)))
	r.exact("angle(w, n) deg", xm.ConvertToDegrees(xm.AngleBetween3(w, n)))
	return r
}

func precision(opts *options) *report {
	r := &report{title: "Precision"}

	n := xm.Normalize3(xm.NewVector3(1, 1, 1))
	lu := xm.Length3(n)
	r.exact("|Normalize3(1, 1, 1)|", lu)
	r.exact("length == 1", lu == 1)
	r.exact("NearEqual(length, 1)", xm.NearEqual(lu, 1, opts.epsilon))
	r.exact("length^(10^6)", xm.Pow(xm.Splat(lu), xm.Splat(1e6)).X())

	u := xm.NewVector3(3.34334, 2.323232, 1.11212)
	exact := xm.Normalize3(u)
	est := xm.Normalize3Est(u)
	r.exact("Normalize3(u)", exact)
	r.approx("Normalize3Est(u)", est)
	r.exact("NearEqual3(exact, estimate)", xm.NearEqual3(exact, est, xm.Splat(opts.epsilon)))
	return r
}
