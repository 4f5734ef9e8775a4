// Package trace derives per-decode correlation IDs for log lines, adapting
// the teacher's content-hashed UUID helper to the decode pipeline.
package trace

import (
	"crypto/md5"

	"github.com/google/uuid"
)

// DecodeTraceID returns a deterministic UUID derived from the input bytes,
// so repeated decodes of the same file correlate across log lines without
// the caller having to thread an ID through by hand.
func DecodeTraceID(input []byte) string {
	hash := md5.Sum(input)
	id, err := uuid.FromBytes(hash[:16])
	if err != nil {
		return ""
	}
	return id.String()
}
