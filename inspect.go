package formdata

import (
	"fmt"
	"strings"
)

// FormatParts formats an encoded part list as a small ASCII tree,
// handy when debugging how a payload was classified and flattened.
func FormatParts(parts []Part) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("multipart body (%d parts)\n", len(parts)))
	for i, p := range parts {
		connector := "├─ "
		if i == len(parts)-1 {
			connector = "└─ "
		}
		sb.WriteString(connector)
		sb.WriteString(formatPartInfo(p))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func formatPartInfo(p Part) string {
	details := []string{
		fmt.Sprintf("type=%s", p.ContentType),
		fmt.Sprintf("size=%d", len(p.Content)),
	}
	if p.Filename != "" {
		details = append(details, fmt.Sprintf("filename=%q", p.Filename))
	}
	return fmt.Sprintf("%s (%s)", p.Name, strings.Join(details, ", "))
}
