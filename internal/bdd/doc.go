/*
Package bdd implements a Reduced Ordered Binary Decision Diagram (ROBDD)
engine with complement edges: a hash-consed, reference-counted node table
exposing the handful of primitives the sampler needs — ithVar, and, not,
then/else decomposition, and constant terminals.

Unlike a general-purpose BDD library (apply for every operator, existential
quantification, dynamic variable reordering), this engine only ever needs
AND and NOT to translate an And-Inverter Graph into a BDD, plus an optional
DOT export for inspecting a diagram by hand. Memory is never reclaimed
mid-build: each Manager backs exactly one split's AAG, is built once, queried
many times by the path-count DP and the sampler, and discarded — so there is
no garbage collector or table resize to get right, only a monotonically
growing unique table.

Complement edges. Each Node is a raw handle: the low bit is a polarity tag,
the remaining bits index the node table. Negation (Not) toggles the tag and
is therefore O(1). To keep the unique table canonical despite the extra
degree of freedom, every stored node normalizes its "then" (high) edge to be
regular; if build would produce a complemented then-edge, both children and
the returned handle are complemented instead (a standard technique also
used by CUDD-style packages).
*/
package bdd
