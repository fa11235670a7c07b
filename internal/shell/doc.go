// Package shell implements the interactive layer: the tokenizer and
// parser for command lines, the pipeline executor, and the readline
// REPL with history and completion.
//
// Grammar: words (optionally quoted), pipes, the operators && || ;,
// and the redirections > >> <. The executor expands $VAR references,
// feeds each stage's output to the next as stdin, and applies
// redirections after the final stage.
package shell
