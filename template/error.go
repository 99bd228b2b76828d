package template

import "fmt"

// UnmatchedDelimiterError reports a Code or Interpolation block whose open
// delimiter never found its close delimiter. Line-delimited blocks cannot
// produce this error; they close implicitly at the end of input.
type UnmatchedDelimiterError struct {
	Kind   Kind
	Offset uint32 // byte offset of the open delimiter
}

func (e *UnmatchedDelimiterError) Error() string {
	return fmt.Sprintf("unmatched `%s`", e.Kind.OpenDelimiter())
}
