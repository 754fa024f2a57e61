package table

import (
	"fmt"
	"strings"
)

// String renders the table in its debug form: the variable triples in
// stored order followed by the flat value sequence, every value trailed by
// a comma. Consumers compare these strings literally, so the layout is
// fixed.
func (t *Table[Y]) String() string {
	var b strings.Builder
	b.WriteString("Table(vars:")
	for _, v := range t.vars {
		fmt.Fprintf(&b, "<%d,%d,%d>", v.Index, v.DomSize, v.StepSize)
	}
	b.WriteString(" values=[")
	for _, y := range t.values {
		fmt.Fprintf(&b, "%v,", y)
	}
	b.WriteString("])")

	return b.String()
}
