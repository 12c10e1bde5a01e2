package main

import "errors"

// errArgument marks a problem with the command line itself (missing file,
// malformed number, wrong argument count): exit code 1.
var errArgument = errors.New("chipletpart: argument error")
