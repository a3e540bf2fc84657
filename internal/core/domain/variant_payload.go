package domain

// VariantCallingPayload is the SONG-style payload produced for variant calling results
type VariantCallingPayload struct {
	AnalysisType AnalysisTypeRef  `json:"analysisType"`
	StudyID      any              `json:"studyId"`
	Experiment   map[string]any   `json:"experiment"`
	Samples      []VariantSample  `json:"samples"`
	Files        []FileDescriptor `json:"files"`
	Inputs       []map[string]any `json:"inputs"`
	Workflow     WorkflowRef      `json:"workflow"`
	VariantClass string           `json:"variantClass"`
}

// AnalysisTypeRef names the analysis type of a payload
type AnalysisTypeRef struct {
	Name string `json:"name"`
}

// WorkflowRef identifies the workflow run that produced a payload
type WorkflowRef struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Version   string `json:"version"`
	RunID     string `json:"runId"`
}

// VariantSample is the sample/specimen/donor block of a variant calling payload.
// Values come straight from the analysis metadata and stay null when absent.
type VariantSample struct {
	SubmitterSampleID              any             `json:"submitterSampleId"`
	MatchedNormalSubmitterSampleID any             `json:"matchedNormalSubmitterSampleId"`
	SampleType                     any             `json:"sampleType"`
	Specimen                       VariantSpecimen `json:"specimen"`
	Donor                          VariantDonor    `json:"donor"`
}

type VariantSpecimen struct {
	SubmitterSpecimenID     any `json:"submitterSpecimenId"`
	TumourNormalDesignation any `json:"tumourNormalDesignation"`
	SpecimenTissueSource    any `json:"specimenTissueSource"`
	SpecimenType            any `json:"specimenType"`
}

type VariantDonor struct {
	SubmitterDonorID any `json:"submitterDonorId"`
	Gender           any `json:"gender"`
}

// NewVariantSample builds the sample block from analysis metadata
func NewVariantSample(md Metadata) VariantSample {
	return VariantSample{
		SubmitterSampleID:              md.Get("submitter_sample_id"),
		MatchedNormalSubmitterSampleID: md.Get("submitter_matched_normal_sample_id"),
		SampleType:                     md.Get("sample_type"),
		Specimen: VariantSpecimen{
			SubmitterSpecimenID:     md.Get("submitter_specimen_id"),
			TumourNormalDesignation: md.Get("tumour_normal_designation"),
			SpecimenTissueSource:    md.Get("specimen_tissue_source"),
			SpecimenType:            md.Get("specimen_type"),
		},
		Donor: VariantDonor{
			SubmitterDonorID: md.Get("submitter_donor_id"),
			Gender:           md.Get("gender"),
		},
	}
}

// VariantPayloadFileName returns "<uuid>.variant_calling.payload.json"
func VariantPayloadFileName(id string) string {
	return id + ".variant_calling.payload.json"
}
