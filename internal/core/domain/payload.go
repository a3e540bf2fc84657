package domain

import (
	"fmt"
	"strings"
)

// Payload types with a known object key layout
const (
	TypeSequencingExperiment = "sequencing_experiment"
	TypeDNAAlignmentQC       = "dna_alignment_qc"
	TypeLaneSeqSubmission    = "lane_seq_submission"
	TypeLaneSeqQC            = "lane_seq_qc"
	TypeDNAAlignment         = "dna_alignment"
	TypeSomaticVariantCall   = "somatic_variant_call"
)

// Payload is a submission bundle document. It is kept as a generic JSON
// object so fields this tool does not know about pass through untouched.
type Payload map[string]any

// ID returns the bundle id, or "" when unset
func (p Payload) ID() string {
	id, _ := p["id"].(string)
	return id
}

// Type returns the payload type discriminator
func (p Payload) Type() (string, error) {
	return p.Lookup("type")
}

// Lookup walks nested objects and returns the string at the dotted path.
// Absent, null, non-string or blank values are reported as a FieldError.
func (p Payload) Lookup(path ...string) (string, error) {
	var cur any = map[string]any(p)
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return "", missingField(strings.Join(path, "."))
		}
		cur = obj[key]
	}
	s, ok := cur.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", missingField(strings.Join(path, "."))
	}
	return s, nil
}

// FileEntries returns the files object keyed by role. Payloads without a
// files object (or with a files list) yield nil.
func (p Payload) FileEntries() map[string]map[string]any {
	files, ok := p["files"].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]map[string]any, len(files))
	for role, v := range files {
		if entry, ok := v.(map[string]any); ok {
			out[role] = entry
		}
	}
	return out
}

// AssignObjectIDs sets object_id on every entry of the files object,
// derived from the payload id and the entry's name.
func (p Payload) AssignObjectIDs() error {
	bundleID := p.ID()
	if bundleID == "" {
		return missingField("id")
	}
	for role, entry := range p.FileEntries() {
		name, ok := entry["name"].(string)
		if !ok || name == "" {
			return missingField(fmt.Sprintf("files.%s.name", role))
		}
		entry["object_id"] = ObjectID(bundleID, name)
	}
	return nil
}

// FileName returns the local file name a payload is written under
func (p Payload) FileName() string {
	return p.ID() + ".json"
}
