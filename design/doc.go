/*
Package design defines the node kinds of an elaborated hardware design graph:
instances, ports, signals, parameters, continuous assignments, procedural
blocks, statements, timing controls, and expressions.

It deliberately contains no parsing or elaboration logic — building a graph
is the job of a front-end (out of scope here) or, for tests and demos, of
tlsim/design/builder.
*/
package design
