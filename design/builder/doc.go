/*
Package builder is a fluent, error-checked way to assemble a
tlsim/design graph from Go code, for tests and the bundled demo. It plays
the same role hwsim.PartSpec/Chip play in the teacher repo: a way to
compose a graph without a text-format front-end.
*/
package builder
