package parse

// Info is a display hint for a well-known fragment name. It is not a
// grammar: names missing from the table parse like any other fragment and
// argument counts are never checked against it.
type Info struct {
	Annotation string
	// Counted marks fragments whose first argument is a count followed by
	// uniform children, e.g. thresh(k,X1,...,Xn).
	Counted bool
}

var fragmentInfo = map[string]Info{
	"0":             {Annotation: "always fails"},
	"1":             {Annotation: "always succeeds"},
	"pk":            {Annotation: "checks a signature"},
	"pk_k":          {Annotation: "pushes a key"},
	"pk_h":          {Annotation: "pushes a key by hash"},
	"pkh":           {Annotation: "checks a signature by key hash"},
	"older":         {Annotation: "relative timelock"},
	"after":         {Annotation: "absolute timelock"},
	"sha256":        {Annotation: "sha256 preimage"},
	"hash256":       {Annotation: "hash256 preimage"},
	"ripemd160":     {Annotation: "ripemd160 preimage"},
	"hash160":       {Annotation: "hash160 preimage"},
	"andor":         {Annotation: "uses a conditional branch"},
	"and_v":         {Annotation: "both, first verified"},
	"and_b":         {Annotation: "both, results combined"},
	"and_n":         {Annotation: "uses a conditional branch"},
	"or_b":          {Annotation: "either, results combined"},
	"or_c":          {Annotation: "uses a conditional branch"},
	"or_d":          {Annotation: "uses a conditional branch"},
	"or_i":          {Annotation: "uses a conditional branch"},
	"thresh":        {Annotation: "k of n sub-conditions", Counted: true},
	"multi":         {Annotation: "uses a multi-check operation", Counted: true},
	"sortedmulti":   {Annotation: "uses a multi-check operation", Counted: true},
	"multi_a":       {Annotation: "uses signature accumulation", Counted: true},
	"sortedmulti_a": {Annotation: "uses signature accumulation", Counted: true},

	// Policy language.
	"and": {Annotation: "both required"},
	"or":  {Annotation: "either suffices"},
}

// Lookup returns the display hint for a fragment name.
func Lookup(name string) (Info, bool) {
	info, ok := fragmentInfo[name]
	return info, ok
}

// Annotate returns the display hint for the fragment n stands for, looking
// through wrappers. It returns "" for terminals, taproot nodes and unknown
// names.
func Annotate(n *Node) string {
	n, _ = n.Unwrap()
	if n == nil || n.Kind != KFragment {
		return ""
	}
	info, ok := Lookup(n.Tok)
	if !ok {
		return ""
	}
	return info.Annotation
}
