package image

import (
	"fmt"
	"hash/fnv"

	"github.com/posty-app/post-api/internal/domain/flow"
)

// Generation results are cached by what actually shapes the output: the
// leading slice of the description plus platform and objective.
const fingerprintDescriptionLen = 200

// Fingerprint derives a stable cache key for generated images.
func Fingerprint(description string, data flow.Data) string {
	head := description
	if len(head) > fingerprintDescriptionLen {
		head = head[:fingerprintDescriptionLen]
	}
	h := fnv.New64a()
	fmt.Fprintf(h, "%s\x00%s\x00%s", head, data.Platform(), data.Objective())
	return fmt.Sprintf("%016x", h.Sum64())
}
