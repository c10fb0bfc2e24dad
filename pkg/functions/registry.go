package functions

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/cmyk/pkg/cmyk"
)

// Function is a host function declaration: its name, its parameter names in
// call order, and the implementation.
type Function struct {
	Name   string
	Params []string
	call   func(args []Arg) (cmyk.Color, error)
}

// Signature returns the declaration in host syntax, e.g.
// "cmyk_mix($cmyk1, $cmyk2)".
func (f Function) Signature() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = "$" + p
	}
	return f.Name + "(" + strings.Join(params, ", ") + ")"
}

// Registry holds the functions declared to a host.
type Registry struct {
	funcs map[string]Function
}

// NewRegistry returns a registry declaring cmyk, cmyk_mix and cmyk_scale.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Function)}
	r.declare("cmyk", []string{cmyk.Cyan, cmyk.Magenta, cmyk.Yellow, cmyk.Black},
		func(a []Arg) (cmyk.Color, error) { return CMYK(a[0], a[1], a[2], a[3]) })
	r.declare("cmyk_mix", []string{"cmyk1", "cmyk2"},
		func(a []Arg) (cmyk.Color, error) { return Mix(a[0], a[1]) })
	r.declare("cmyk_scale", []string{"cmyk", "percent"},
		func(a []Arg) (cmyk.Color, error) { return Scale(a[0], a[1]) })
	return r
}

func (r *Registry) declare(name string, params []string, call func([]Arg) (cmyk.Color, error)) {
	r.funcs[name] = Function{Name: name, Params: params, call: call}
}

// Lookup returns the function declared under name.
func (r *Registry) Lookup(name string) (Function, bool) {
	f, ok := r.funcs[name]
	return f, ok
}

// Functions returns all declared functions sorted by name.
func (r *Registry) Functions() []Function {
	res := make([]Function, 0, len(r.funcs))
	for _, f := range r.funcs {
		res = append(res, f)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

// Call invokes the function declared under name. Host function names treat
// "-" and "_" as the same character. Unknown names and a wrong number of
// arguments are reported as validation errors.
func (r *Registry) Call(name string, args ...Arg) (cmyk.Color, error) {
	f, ok := r.Lookup(strings.ReplaceAll(name, "-", "_"))
	if !ok {
		return cmyk.Color{}, invalid("call", name, "unknown function")
	}
	if len(args) != len(f.Params) {
		return cmyk.Color{}, invalid(f.Name, len(args),
			fmt.Sprintf("%s takes %d arguments", f.Signature(), len(f.Params)))
	}
	return f.call(args)
}
