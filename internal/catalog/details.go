package catalog

import "strings"

type SpecRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SpecTable splits "key: value" specs on the first colon. Entries without a colon have an empty key.
func SpecTable(specs []string) []SpecRow {
	rows := make([]SpecRow, 0, len(specs))
	for _, spec := range specs {
		key, value, found := strings.Cut(spec, ":")
		if !found {
			rows = append(rows, SpecRow{Value: strings.TrimSpace(spec)})
			continue
		}
		rows = append(rows, SpecRow{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)})
	}
	return rows
}

type DescriptionBlock struct {
	Text   string `json:"text"`
	Bullet bool   `json:"bullet"`
}

var bulletMarkers = []string{"•", "-", "*", "✓"}

func DescriptionBlocks(text string) []DescriptionBlock {
	blocks := make([]DescriptionBlock, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		block := DescriptionBlock{Text: line}
		for _, marker := range bulletMarkers {
			if rest, ok := strings.CutPrefix(line, marker); ok {
				block = DescriptionBlock{Text: strings.TrimSpace(rest), Bullet: true}
				break
			}
		}
		blocks = append(blocks, block)
	}
	return blocks
}
