package generic_name

import "strings"

// SplitTopLevel splits content on commas that are not nested inside an angle
// bracket pair or a parenthesis pair. Each piece is trimmed of surrounding
// whitespace; pieces that are empty after trimming are dropped. Unbalanced
// brackets are not an error; the depth counters simply go negative and the
// result is a best-effort split.
func SplitTopLevel(content string) []string {
	var parameters []string
	var builder strings.Builder

	angleDepth := 0
	parenDepth := 0

	flush := func() {
		if parameter := strings.TrimSpace(builder.String()); parameter != "" {
			parameters = append(parameters, parameter)
		}
		builder.Reset()
	}

	for _, character := range content {
		switch character {
		case '<':
			angleDepth++
		case '>':
			angleDepth--
		case '(':
			parenDepth++
		case ')':
			parenDepth--
		case ',':
			if angleDepth == 0 && parenDepth == 0 {
				flush()
				continue
			}
		}

		builder.WriteRune(character)
	}
	flush()

	return parameters
}

// Parse extracts the root name and the top-level generic parameters from a
// formatted type name. The generic span is everything between the first '<'
// and the last '>'. Names without such a span, and names where the last '>'
// precedes the first '<', yield the whole input as the root and no parameters.
func Parse(typeName string) (string, []string) {
	start := strings.Index(typeName, "<")
	end := strings.LastIndex(typeName, ">")
	if start == -1 || end == -1 || end < start {
		return typeName, nil
	}

	root := typeName[:start]

	interior := typeName[start+1 : end]
	if strings.TrimSpace(interior) == "" {
		return root, nil
	}

	return root, SplitTopLevel(interior)
}
