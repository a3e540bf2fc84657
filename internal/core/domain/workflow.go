package domain

import "fmt"

// toolsByWorkflow maps workflow short name -> data type -> originating tools
var toolsByWorkflow = map[string]map[string][]string{
	"sanger-wxs": {
		"snv":   {"CaVEMan"},
		"indel": {"Pindel"},
	},
	"sanger-wgs": {
		"snv":   {"CaVEMan"},
		"indel": {"Pindel"},
		"cnv":   {"ASCAT"},
		"sv":    {"BRASS"},
	},
	"broad-mutect2": {
		"snv-indel": {"Mutect2"},
	},
}

var analysisTypes = map[string]string{
	"snv":       "Simple somatic mutation calling",
	"indel":     "Simple somatic mutation calling",
	"snv-indel": "Simple somatic mutation calling",
	"cnv":       "Copy number somatic mutation calling",
	"sv":        "Structural somatic mutation calling",
}

var workflowFullNames = map[string]string{
	"dna-seq":    "dna-seq-alignment",
	"sanger-wxs": "sanger-wxs-variant-calling",
}

// LookupTools returns the tools that produce dataType in workflow
func LookupTools(workflow, dataType string) ([]string, error) {
	byType, ok := toolsByWorkflow[workflow]
	if !ok {
		return nil, fmt.Errorf("%w: workflow %q", ErrUnknownWorkflow, workflow)
	}
	tools, ok := byType[dataType]
	if !ok || len(tools) == 0 {
		return nil, fmt.Errorf("%w: %q has no data type %q", ErrUnknownWorkflow, workflow, dataType)
	}
	out := make([]string, len(tools))
	copy(out, tools)
	return out, nil
}

// HasToolTable reports whether workflow has an entry in the tool lookup table
func HasToolTable(workflow string) bool {
	_, ok := toolsByWorkflow[workflow]
	return ok
}

// AnalysisType returns the analysis description for a data type
func AnalysisType(dataType string) (string, error) {
	at, ok := analysisTypes[dataType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDataType, dataType)
	}
	return at, nil
}

// WorkflowFullName expands a workflow short name
func WorkflowFullName(short string) (string, error) {
	full, ok := workflowFullNames[short]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownWorkflow, short)
	}
	return full, nil
}

// VariantCaller describes a supported variant calling workflow
type VariantCaller struct {
	ShortName string
	Germline  bool
}

// VariantClass returns "germline" or "somatic"
func (c VariantCaller) VariantClass() string {
	if c.Germline {
		return "germline"
	}
	return "somatic"
}

var variantCallers = map[string]VariantCaller{
	"sanger-wgs":      {ShortName: "sanger-wgs"},
	"sanger-wxs":      {ShortName: "sanger-wxs"},
	"broad-mutect2":   {ShortName: "broad-mutect2"},
	"HaplotypeCaller": {ShortName: "HaplotypeCaller", Germline: true},
}

// LookupVariantCaller resolves a variant-calling workflow short name
func LookupVariantCaller(short string) (VariantCaller, error) {
	c, ok := variantCallers[short]
	if !ok {
		return VariantCaller{}, fmt.Errorf("%w: %s", ErrUnsupportedCaller, short)
	}
	return c, nil
}
