package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload_AssignObjectIDs(t *testing.T) {
	p := Payload{
		"id": testBundleID,
		"files": map[string]any{
			"aligned_seq": map[string]any{"name": "sample.bam"},
			"index":       map[string]any{"name": "sample.bam.bai"},
		},
	}

	require.NoError(t, p.AssignObjectIDs())

	files := p.FileEntries()
	assert.Equal(t, ObjectID(testBundleID, "sample.bam"), files["aligned_seq"]["object_id"])
	assert.Equal(t, ObjectID(testBundleID, "sample.bam.bai"), files["index"]["object_id"])
}

func TestPayload_AssignObjectIDs_NoFiles(t *testing.T) {
	p := Payload{"id": testBundleID}
	assert.NoError(t, p.AssignObjectIDs())
	assert.Nil(t, p.FileEntries())
}

func TestPayload_AssignObjectIDs_MissingName(t *testing.T) {
	p := Payload{
		"id":    testBundleID,
		"files": map[string]any{"vcf": map[string]any{"size": 10}},
	}
	err := p.AssignObjectIDs()
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "files.vcf.name")
}

func TestPayload_Lookup(t *testing.T) {
	p := Payload{"analysis": map[string]any{"tool": map[string]any{"short_name": "sanger-wxs"}}}

	got, err := p.Lookup("analysis", "tool", "short_name")
	require.NoError(t, err)
	assert.Equal(t, "sanger-wxs", got)

	_, err = p.Lookup("analysis", "tool", "version")
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = p.Lookup("analysis", "tool", "short_name", "deeper")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestMetadata(t *testing.T) {
	md := Metadata{"program_id": "TEST-PR", "blank": "  ", "n": float64(3)}

	s, ok := md.String("program_id")
	assert.True(t, ok)
	assert.Equal(t, "TEST-PR", s)

	s, ok = md.String("n")
	assert.True(t, ok)
	assert.Equal(t, "3", s)

	_, ok = md.String("absent")
	assert.False(t, ok)

	_, err := md.Require("blank")
	assert.ErrorIs(t, err, ErrMissingField)

	md["nested"] = map[string]any{"x": 1}
	_, ok = md.String("nested")
	assert.False(t, ok)
	_, err = md.Require("nested")
	assert.ErrorIs(t, err, ErrInvalidField)

	info := md.Pick("program_id", "absent")
	assert.Equal(t, map[string]any{"program_id": "TEST-PR", "absent": nil}, info)

	var nilMD Metadata
	assert.Nil(t, nilMD.Get("x"))
}

func TestSampleDesignation(t *testing.T) {
	assert.Equal(t, "normal", SampleDesignation("Normal"))
	assert.Equal(t, "normal", SampleDesignation("Normal - tissue adjacent to primary"))
	assert.Equal(t, "tumour", SampleDesignation("Primary tumour"))
	assert.Equal(t, "tumour", SampleDesignation(""))
}

func TestExternalCommandError_ExitCode(t *testing.T) {
	assert.Equal(t, 3, (&ExternalCommandError{Command: "aws", Code: 3}).ExitCode())
	assert.Equal(t, 1, (&ExternalCommandError{Command: "aws", Code: -1}).ExitCode())
}
