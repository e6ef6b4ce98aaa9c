package train

import "github.com/goccy/go-json"

// Raw is a training-corpus line: either a structured record with a
// required "html" field (other fields ignored), or a plain string. A
// line is parsed as the structured form only when it begins with '{';
// any unmarshal failure there is skipped rather than treated as
// fatal.
type Raw struct {
	Text string
}

// ParseRaw decodes one corpus line into its text payload. ok is false
// when the line looks structured but fails to parse as an object, or
// parses but is missing the required "html" field -- the caller
// should skip that line and move on rather than abort the run.
func ParseRaw(line string) (Raw, bool) {
	if len(line) == 0 || line[0] != '{' {
		return Raw{Text: line}, true
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return Raw{}, false
	}
	html, ok := rec["html"].(string)
	if !ok {
		return Raw{}, false
	}
	return Raw{Text: html}, true
}
