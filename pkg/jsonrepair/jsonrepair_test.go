package jsonrepair

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairValidDocumentPassesThrough(t *testing.T) {
	doc, stage, err := Repair(`{"days":[{"day":1,"places":[]}]}`)
	require.NoError(t, err)
	assert.Equal(t, StageDirect, stage)
	assert.Equal(t, `{"days":[{"day":1,"places":[]}]}`, doc)
}

func TestRepairStripsFencesAndProse(t *testing.T) {
	raw := "Sure! Here is your trip plan:\n```json\n{\"days\":[{\"day\":1,\"places\":[]}]}\n```\nEnjoy your trip!"

	doc, stage, err := Repair(raw)
	require.NoError(t, err)
	assert.Equal(t, StageSanitized, stage)
	assert.JSONEq(t, `{"days":[{"day":1,"places":[]}]}`, doc)
}

func TestRepairRemovesTrailingCommas(t *testing.T) {
	raw := `{"days":[{"day":1,"places":[]},],"tips":["pack light",],}`

	doc, stage, err := Repair(raw)
	require.NoError(t, err)
	assert.Equal(t, StageSanitized, stage)
	assert.JSONEq(t, `{"days":[{"day":1,"places":[]}],"tips":["pack light"]}`, doc)
}

func TestRepairSlicesSurroundingProse(t *testing.T) {
	raw := `Here you go {"new_place":"Marine Drive","description":"Great sunset spot"} hope that helps`

	doc, stage, err := Repair(raw)
	require.NoError(t, err)
	assert.Equal(t, StageSanitized, stage)
	assert.JSONEq(t, `{"new_place":"Marine Drive","description":"Great sunset spot"}`, doc)
}

func TestRepairNormalizesEmbeddedLineBreaks(t *testing.T) {
	raw := "{\"tips\":[\"line one\nline two\"]}"

	doc, stage, err := Repair(raw)
	require.NoError(t, err)
	assert.Equal(t, StageNormalized, stage)
	assert.JSONEq(t, `{"tips":["line one line two"]}`, doc)
}

func TestRepairStripsControlCharacters(t *testing.T) {
	raw := "{\"name\":\"Gateway\x01 of India\"}"

	doc, stage, err := Repair(raw)
	require.NoError(t, err)
	assert.Equal(t, StageSanitized, stage)
	assert.JSONEq(t, `{"name":"Gateway of India"}`, doc)
}

func TestRepairExtractsObjectWhenTrailingGarbageHasBraces(t *testing.T) {
	raw := `Result: {"new_place":"Elephanta Caves"} closing note}`

	doc, stage, err := Repair(raw)
	require.NoError(t, err)
	assert.Equal(t, StageExtracted, stage)
	assert.JSONEq(t, `{"new_place":"Elephanta Caves"}`, doc)
}

func TestRepairEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t"} {
		_, _, err := Repair(raw)
		assert.ErrorIs(t, err, ErrEmptyResponse, "input %q", raw)
	}
}

func TestRepairNoJSONFound(t *testing.T) {
	_, _, err := Repair("no json here")
	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestRepairTerminalFailureReportsExcerpts(t *testing.T) {
	raw := `{"a": }`

	_, _, err := Repair(raw)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, StageExtracted, parseErr.Stage)
	assert.Equal(t, len(raw), parseErr.Length)
	assert.NotEmpty(t, parseErr.Prefix)
	assert.NotEmpty(t, parseErr.Reason)
	assert.Contains(t, parseErr.Error(), "extracted")
}

func TestRepairExcerptIsBounded(t *testing.T) {
	raw := `{"broken": ` + strings.Repeat("x", 500) + `}`

	_, _, err := Repair(raw)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.LessOrEqual(t, len(parseErr.Prefix), 200)
	assert.LessOrEqual(t, len(parseErr.Suffix), 200)
}

func TestSanitizeIsIdempotent(t *testing.T) {
	raw := "```json\n{\"days\": [1, 2,],}\n```"

	once, err := Sanitize(raw)
	require.NoError(t, err)
	twice, err := Sanitize(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestParseIntoStruct(t *testing.T) {
	var result struct {
		NewPlace    string `json:"new_place"`
		Description string `json:"description"`
	}

	stage, err := Parse("```json\n{\"new_place\":\"Juhu Beach\",\"description\":\"Less crowded\"}\n```", &result)
	require.NoError(t, err)
	assert.Equal(t, StageSanitized, stage)
	assert.Equal(t, "Juhu Beach", result.NewPlace)
	assert.Equal(t, "Less crowded", result.Description)
}

func TestParseTypeMismatchReturnsParseError(t *testing.T) {
	var result struct {
		Days []int `json:"days"`
	}

	_, err := Parse(`{"days":"not an array"}`, &result)
	require.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}
