// Package infer builds a minimal JSON Type Definition (RFC 8927) schema
// that accepts every example value folded into it.
//
// The inference state for one document position is a partial schema
// that only ever widens as examples arrive: numeric kinds grow along a
// fixed lattice, object keys missing from an example are demoted to
// optional, a null observation makes the position nullable, and shapes
// with no common JTD form collapse to the empty "accept anything"
// schema. Folding is commutative and associative, so the final schema
// does not depend on example order.
package infer

import (
	"github.com/valyala/fastjson"

	"github.com/siegeai/jtdinfer/jtdschema"
)

// Inferrer folds example values into an inference and materializes the
// result as a JTD schema document. It is not safe for concurrent use;
// each inference run owns its tree exclusively.
type Inferrer struct {
	inference *inference
	hints     *Hints
}

// NewInferrer returns an inferrer that has seen no examples yet.
func NewInferrer(hints *Hints) *Inferrer {
	return &Inferrer{
		inference: newInference(),
		hints:     hints,
	}
}

// Infer folds one example value into the inference. The value is fully
// consumed during the call and may be recycled by the caller afterward.
func (i *Inferrer) Infer(v *fastjson.Value) {
	i.inference = i.inference.observe(v, nil, i.hints)
}

// InferBytes parses one JSON document and folds it in.
func (i *Inferrer) InferBytes(b []byte) error {
	v, err := fastjson.ParseBytes(b)
	if err != nil {
		return err
	}
	i.Infer(v)
	return nil
}

// Schema materializes the current inference as a schema document. The
// schema accepts every example folded in so far.
func (i *Inferrer) Schema() *jtdschema.Schema {
	return i.inference.intoSchema(i.hints.DefaultNumType)
}
