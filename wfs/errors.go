package wfs

import "fmt"

// UnassignedNamespaceError reports a namespace prefix referenced in the
// transaction body with no URI assignment.
type UnassignedNamespaceError struct {
	Prefix string
}

func (e UnassignedNamespaceError) Error() string {
	return fmt.Sprintf("no namespace URI assigned for prefix %q", e.Prefix)
}

// MissingTypeNameError reports that neither an explicit TypeName nor
// both Ns and Layer were available to name the feature type.
type MissingTypeNameError struct{}

func (e MissingTypeNameError) Error() string {
	return "cannot resolve typeName: supply TypeName, or Ns and Layer"
}

// UnexpectedActionError reports a Transaction actions argument that is
// none of the accepted forms.
type UnexpectedActionError struct {
	Value any
}

func (e UnexpectedActionError) Error() string {
	return fmt.Sprintf(
		"unexpected actions input %T: want a string, []string, or a TransactionGroup with at least one action set",
		e.Value)
}
