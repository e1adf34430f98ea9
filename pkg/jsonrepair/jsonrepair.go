package jsonrepair

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrEmptyResponse = errors.New("empty response from AI")
	ErrNoJSONFound   = errors.New("no JSON object found in AI response")
)

// Stage identifies which cleanup level produced a parseable candidate.
type Stage int

const (
	StageDirect Stage = iota
	StageSanitized
	StageNormalized
	StageExtracted
)

func (s Stage) String() string {
	switch s {
	case StageDirect:
		return "direct"
	case StageSanitized:
		return "sanitized"
	case StageNormalized:
		return "normalized"
	case StageExtracted:
		return "extracted"
	default:
		return "unknown"
	}
}

// ParseError reports that every repair stage failed. It keeps only bounded
// excerpts of the raw text so it is safe to log and return.
type ParseError struct {
	Stage  Stage
	Reason string
	Length int
	Prefix string
	Suffix string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse AI response after %s stage: %s (length=%d, starts=%q, ends=%q)",
		e.Stage, e.Reason, e.Length, e.Prefix, e.Suffix)
}

const excerptLen = 200

var (
	fenceRe = regexp.MustCompile("(?i)```(?:json)?")
	// strips C0 controls and DEL but keeps \t, \n and \r so multi-line
	// values survive; control bytes inside string literals are lost,
	// which is a known limitation inherited from the cleanup rules
	controlRe       = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)
	colonSpaceRe    = regexp.MustCompile(`"\s*:\s*`)
	commaSpaceRe    = regexp.MustCompile(`"\s*,\s*"`)
	multiSpaceRe    = regexp.MustCompile(`\s{2,}`)
)

// Sanitize runs the ordered cleanup steps on raw model output: BOM strip,
// markdown fence removal, slicing to the outermost braces, trailing comma
// removal and control character stripping. It returns ErrNoJSONFound when
// the text contains no object braces at all.
func Sanitize(raw string) (string, error) {
	s := strings.TrimPrefix(raw, "\uFEFF")
	s = strings.TrimSpace(s)
	s = fenceRe.ReplaceAllString(s, "")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSONFound
	}
	s = s[start : end+1]

	s = trailingCommaRe.ReplaceAllString(s, "$1")
	s = controlRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s), nil
}

// normalize collapses formatting damage that survives sanitization:
// line breaks and tabs become single spaces, runs of spaces collapse,
// and spacing around structural colons and commas is tightened.
func normalize(sanitized string) string {
	s := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(sanitized)
	s = multiSpaceRe.ReplaceAllString(s, " ")
	s = colonSpaceRe.ReplaceAllString(s, `":`)
	s = commaSpaceRe.ReplaceAllString(s, `","`)
	return strings.TrimSpace(s)
}

// extractObject scans for the first '{' and walks a depth counter to its
// matching '}', honouring string literals and escapes, then re-applies the
// comma and control character cleanup on the slice.
func extractObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					candidate := raw[start : i+1]
					candidate = trailingCommaRe.ReplaceAllString(candidate, "$1")
					candidate = controlRe.ReplaceAllString(candidate, "")
					return candidate, true
				}
			}
		}
	}
	return "", false
}

// Repair coerces raw model output into a valid JSON document, escalating
// through cleanup stages and returning the first candidate that parses along
// with the stage that produced it. Each stage builds a fresh candidate: the
// sanitize and extract stages work from the original input, normalization
// works from the sanitized form.
func Repair(raw string) (string, Stage, error) {
	if strings.TrimSpace(raw) == "" {
		return "", StageDirect, ErrEmptyResponse
	}

	direct := strings.TrimSpace(raw)
	if json.Valid([]byte(direct)) {
		return direct, StageDirect, nil
	}

	sanitized, err := Sanitize(raw)
	if err != nil {
		return "", StageSanitized, err
	}
	if json.Valid([]byte(sanitized)) {
		return sanitized, StageSanitized, nil
	}

	normalized := normalize(sanitized)
	if json.Valid([]byte(normalized)) {
		return normalized, StageNormalized, nil
	}

	if extracted, ok := extractObject(raw); ok && json.Valid([]byte(extracted)) {
		return extracted, StageExtracted, nil
	}

	reason := "candidate is not a JSON document"
	var probe any
	if err := json.Unmarshal([]byte(normalized), &probe); err != nil {
		reason = err.Error()
	}
	return "", StageExtracted, &ParseError{
		Stage:  StageExtracted,
		Reason: reason,
		Length: len(raw),
		Prefix: excerpt(raw, excerptLen, false),
		Suffix: excerpt(raw, excerptLen, true),
	}
}

// Parse repairs raw model output and unmarshals the result into v.
func Parse(raw string, v any) (Stage, error) {
	doc, stage, err := Repair(raw)
	if err != nil {
		return stage, err
	}
	if err := json.Unmarshal([]byte(doc), v); err != nil {
		return stage, &ParseError{
			Stage:  stage,
			Reason: err.Error(),
			Length: len(raw),
			Prefix: excerpt(raw, excerptLen, false),
			Suffix: excerpt(raw, excerptLen, true),
		}
	}
	return stage, nil
}

func excerpt(s string, n int, fromEnd bool) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	if fromEnd {
		return s[len(s)-n:]
	}
	return s[:n]
}
