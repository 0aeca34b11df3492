// Package traverse provides incremental, pull-style traversal over a
// core.Graph: the caller holds a Traversal value and steps it one
// element at a time instead of receiving a callback per element.
//
// What:
//
//   - Traversal[H]: an iterator whose current element is inspected with
//     Current and consumed with Advance or Next.
//   - Two element kinds: vertex-primary (NewVertexTraversal) and
//     edge-primary (NewEdgeTraversal).
//   - Two orders: DepthFirst (default) and BreadthFirst.
//   - Two directions: Forward (default, along edges) and Reverse
//     (against edges). Kind x order x direction gives eight variants
//     from two constructors.
//   - Steering: Visit reschedules the traversal at a handle,
//     MarkVisited overrides the visited bit of any element, and
//     SkipChildren suppresses the current element's neighbors once.
//
// Why:
//
//   - Interleave traversal with caller logic (search loops, solvers)
//     without inverting control into callbacks.
//   - Pause, resume, and redirect a walk; revisit elements by clearing
//     their visited bit mid-run.
//   - Reverse traversals answer "what reaches this element" with the
//     same machinery as forward reachability.
//
// Semantics:
//
//   - An element is marked visited when the traversal advances past it,
//     not when it is first enqueued.
//   - The worklist may hold ids that became visited after enqueueing;
//     they are skipped lazily when they surface to the front. Clearing
//     a visited bit therefore makes any still-queued occurrence
//     deliverable again.
//   - Depth-first scheduling prepends a neighbor block, so a vertex's
//     neighbors are explored in adjacency order; breadth-first appends.
//   - Mutating the graph while a traversal is live is undefined.
//
// Complexity:
//
//   - Full run: Time O(V + E) vertex-primary, O(sum of expansions)
//     edge-primary; Memory O(queued ids + count/64).
//
// Errors:
//
//   - ErrGraphNil        nil graph passed to a constructor
//   - ErrInvalidHandle   stale/foreign start or Visit handle, or
//     MarkVisited id outside the universe
//   - ErrEndOfTraversal  Current/Next/Advance on an exhausted traversal
//   - ErrOptionViolation invalid WithOrder or WithDirection value
package traverse
