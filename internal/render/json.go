// Package render turns a Snapshot into either a structured encoding or a
// fixed-width text report.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"hostsnap/internal/model"
)

// JSON writes the snapshot as indented JSON. Absent optional fields are
// emitted as explicit nulls so the document shape is identical on every
// host.
func JSON(w io.Writer, snap model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
