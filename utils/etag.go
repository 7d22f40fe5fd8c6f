package utils

import "fmt"

// GenerateETag derives a list validator from the newest record id and the
// collection length. Record ids are insertion timestamps, so together with
// the length this changes whenever the list does.
func GenerateETag(latestID int64, count int) string {
	return fmt.Sprintf("\"%x-%x\"", latestID, count)
}
