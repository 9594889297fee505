package autodiff

import (
	"fmt"
	"io"
)

// Backward computes gradients for every value reachable from root.
//
// Algorithm:
//  1. Sort the graph topologically (operands before dependents)
//  2. Walk the order in reverse so root comes first
//  3. Reset derived values and seed root's gradient with 1 (d(root)/d(root))
//  4. For each derived value, push its operation's local gradients onto the
//     operands with +=
//
// Leaf gradients are added to, not replaced: calling Backward twice without
// zeroing doubles every leaf gradient, and calling it on several roots that
// share parameters sums their gradients. Training relies on this to
// accumulate a whole batch before one update. Derived values only ever hold
// the gradient of the latest sweep, so an intermediate node shared by two
// roots does not leak the first root's gradient into the second sweep.
func Backward(root *Value) {
	if root == nil {
		panic("backward: root is nil")
	}

	order := TopologicalOrder(root)
	for _, node := range order {
		if node.op != nil {
			node.grad = 0
		}
	}
	root.grad = 1

	inputs := make([]float64, 0, 2)
	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if node.op == nil {
			continue
		}

		inputs = inputs[:0]
		for _, operand := range node.prev {
			inputs = append(inputs, operand.data)
		}

		grads := node.op.Backward(node.grad, inputs)
		for j, operand := range node.prev {
			operand.grad += grads[j]
		}
	}
}

// TopologicalOrder returns every value reachable from root, each exactly once,
// with operands placed before the values that depend on them. Root is last.
//
// Nodes are deduplicated by identity; two values holding equal numbers are
// distinct nodes. The traversal uses an explicit stack so long chains do not
// grow the goroutine stack.
func TopologicalOrder(root *Value) []*Value {
	type frame struct {
		node *Value
		next int // index of the next operand to visit
	}

	visited := map[*Value]struct{}{root: {}}
	stack := []frame{{node: root}}
	var order []*Value

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.prev) {
			operand := top.node.prev[top.next]
			top.next++
			if _, seen := visited[operand]; !seen {
				visited[operand] = struct{}{}
				stack = append(stack, frame{node: operand})
			}
			continue
		}

		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order
}

// ZeroGrads zeroes the gradient of every value reachable from root.
func ZeroGrads(root *Value) {
	for _, node := range TopologicalOrder(root) {
		node.grad = 0
	}
}

// Trace writes one line per value reachable from root, root first.
//
// Derived values are annotated with their operation. Intended for debugging
// small graphs.
func Trace(w io.Writer, root *Value) error {
	order := TopologicalOrder(root)
	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		line := node.String()
		if node.op != nil {
			line = fmt.Sprintf("%s <- %s", line, node.op)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("trace: %w", err)
		}
	}
	return nil
}
