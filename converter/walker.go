package converter

import (
	"fmt"

	"github.com/erraggy/smithytools/smithy"
)

// walkSequence is the deterministic traversal result for one service:
// the operations to assemble, in binding order, and every data shape
// transitively reachable from them, each exactly once, in discovery order.
type walkSequence struct {
	operations []smithy.ShapeID
	dataShapes []smithy.ShapeID
}

// walkShapes enumerates the shapes reachable from a service in a fixed
// order: the service's operations in declaration order, then each bound
// resource depth-first (lifecycle operations in create/put/read/update/
// delete/list order, then collection operations, then declared operations,
// then sub-resources), then all data shapes reachable from the collected
// operations, depth-first. Repeated runs over an unchanged model produce an
// identical sequence, which in turn makes the components registry order
// byte-stable.
//
// The walk is read-only and fails only when a referenced shape is missing
// from the model.
func walkShapes(model *smithy.Model, serviceID smithy.ShapeID) (*walkSequence, error) {
	seq := &walkSequence{}
	seenOps := make(map[smithy.ShapeID]bool)

	svc := model.Shape(serviceID)
	if svc == nil {
		return nil, fmt.Errorf("service shape %s referenced but not defined in model", serviceID)
	}

	if err := collectOperations(model, serviceID, svc, seq, seenOps); err != nil {
		return nil, err
	}

	seenData := make(map[smithy.ShapeID]bool)
	for _, opID := range seq.operations {
		op := model.Shape(opID)
		for _, ref := range operationStructureRefs(op) {
			target, err := ref.TargetID()
			if err != nil {
				return nil, err
			}
			if err := collectDataShapes(model, target, seq, seenData); err != nil {
				return nil, err
			}
		}
	}
	return seq, nil
}

// collectOperations gathers operation IDs from a service or resource shape.
func collectOperations(model *smithy.Model, id smithy.ShapeID, shape *smithy.Shape, seq *walkSequence, seen map[smithy.ShapeID]bool) error {
	addOp := func(ref *smithy.ShapeRef) error {
		opID, err := ref.TargetID()
		if err != nil {
			return err
		}
		if seen[opID] {
			return nil
		}
		op := model.Shape(opID)
		if op == nil {
			return fmt.Errorf("operation %s referenced by %s but not defined in model", opID, id)
		}
		if op.Type != smithy.ShapeOperation {
			return fmt.Errorf("shape %s referenced as an operation by %s but is a %s", opID, id, op.Type)
		}
		seen[opID] = true
		seq.operations = append(seq.operations, opID)
		return nil
	}

	if shape.Type == smithy.ShapeResource {
		for _, ref := range shape.LifecycleRefs() {
			if err := addOp(ref); err != nil {
				return err
			}
		}
		for _, ref := range shape.CollectionOperations {
			if err := addOp(ref); err != nil {
				return err
			}
		}
	}
	for _, ref := range shape.Operations {
		if err := addOp(ref); err != nil {
			return err
		}
	}
	for _, ref := range shape.Resources {
		resID, err := ref.TargetID()
		if err != nil {
			return err
		}
		res := model.Shape(resID)
		if res == nil {
			return fmt.Errorf("resource %s referenced by %s but not defined in model", resID, id)
		}
		if err := collectOperations(model, resID, res, seq, seen); err != nil {
			return err
		}
	}
	return nil
}

// operationStructureRefs returns an operation's input, output, and error
// references in their fixed order.
func operationStructureRefs(op *smithy.Shape) []*smithy.ShapeRef {
	if op == nil {
		return nil
	}
	var refs []*smithy.ShapeRef
	if op.Input != nil {
		refs = append(refs, op.Input)
	}
	if op.Output != nil {
		refs = append(refs, op.Output)
	}
	refs = append(refs, op.Errors...)
	return refs
}

// collectDataShapes appends id and every shape reachable from it,
// depth-first in member declaration order, visiting each ID exactly once.
func collectDataShapes(model *smithy.Model, id smithy.ShapeID, seq *walkSequence, seen map[smithy.ShapeID]bool) error {
	id = id.WithoutMember()
	if seen[id] {
		return nil
	}
	if _, isPrelude := smithy.PreludeShapeType(id); isPrelude {
		return nil
	}
	shape := model.Shape(id)
	if shape == nil {
		return fmt.Errorf("shape %s referenced but not defined in model", id)
	}
	seen[id] = true
	seq.dataShapes = append(seq.dataShapes, id)

	recurse := func(target string) error {
		targetID, err := smithy.ParseShapeID(target)
		if err != nil {
			return fmt.Errorf("shape %s: %w", id, err)
		}
		return collectDataShapes(model, targetID, seq, seen)
	}

	switch shape.Type {
	case smithy.ShapeList:
		if shape.Member != nil {
			return recurse(shape.Member.Target)
		}
	case smithy.ShapeMap:
		if shape.Key != nil {
			if err := recurse(shape.Key.Target); err != nil {
				return err
			}
		}
		if shape.Value != nil {
			return recurse(shape.Value.Target)
		}
	case smithy.ShapeStructure, smithy.ShapeUnion:
		for _, name := range shape.Members.Names() {
			if err := recurse(shape.Members.Get(name).Target); err != nil {
				return err
			}
		}
	}
	return nil
}
