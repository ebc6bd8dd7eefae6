// Package cli is the terminal front end for the todo API. Binder runs the
// interactive list-and-add loop; NewRootCommand builds the cobra command
// tree for the todo binary.
package cli
