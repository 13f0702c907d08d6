package builder

import (
	"github.com/davecgh/go-spew/spew"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders a built value for inspection.
func Dump(v any) string {
	return dumper.Sdump(v)
}
