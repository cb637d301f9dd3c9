package feed

import "strings"

// StripZeros removes leading zeros from an identifier. An all-zero identifier
// collapses to the empty string and is treated as absent.
func StripZeros(id string) string {
	return strings.TrimLeft(strings.TrimSpace(id), "0")
}

// PadTo left-pads an identifier with zeros to the given width. Identifiers
// already longer than the width cannot be padded and return "".
func PadTo(id string, width int) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > width {
		return ""
	}
	return strings.Repeat("0", width-len(id)) + id
}

// KeyVariants returns the identifier variants under which a record is
// registered: raw, zero-stripped, and padded to 12/13/14 digits. Empty
// variants are omitted; duplicates are left to the index's first-writer-wins
// policy.
func KeyVariants(rawID string) []string {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return nil
	}
	stripped := StripZeros(rawID)
	variants := []string{rawID}
	if stripped != "" && stripped != rawID {
		variants = append(variants, stripped)
	}
	for _, width := range []int{12, 13, 14} {
		if padded := PadTo(stripped, width); padded != "" {
			variants = append(variants, padded)
		}
	}
	return variants
}
