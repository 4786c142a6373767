package printer

import (
	"fmt"
	"testing"

	"github.com/ipld/go-ipld-prime/node/bindnode"
	"github.com/ipld/go-ipld-prime/printer"
	"github.com/storacha/go-hashfn/core/value"
	"github.com/storacha/go-hashfn/core/value/datamodel"
)

// PrintValue logs the renderings of v along with its data model form.
func PrintValue(t *testing.T, name string, v value.HashValue) {
	t.Helper()
	t.Logf("%s", name)
	t.Logf("  Hex: %s", v.Hex(false))
	t.Logf("  Binary: %s", v.Binary(true))
	t.Logf("  Base64: %s", v.Base64())
	t.Logf("  CID: %s", v.CID())
	t.Logf("  Model:\n%s", SprintValue(v))
}

// SprintValue renders the data model form of v.
func SprintValue(v value.HashValue) string {
	return printer.Sprint(bindnode.Wrap(value.ToModel(v), datamodel.HashValueType()))
}

func SprintBytes(b int) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
