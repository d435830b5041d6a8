package battle

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatch applies the RFC 6902 JSON patch patch to the document doc.
func ApplyPatch(doc, patch []byte) ([]byte, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	return out, nil
}
