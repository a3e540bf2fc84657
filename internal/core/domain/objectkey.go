package domain

import (
	"fmt"
	"path"
	"strings"
)

// ObjectKeyPrefix is the fixed top-level prefix under the bucket
const ObjectKeyPrefix = "PCAWG2"

// BasePath returns <bucket>/PCAWG2/<library_strategy>/<program_id>/<donor>/<sample>.<tumour|normal>
func BasePath(bucket string, md Metadata) (string, error) {
	if strings.TrimSpace(bucket) == "" {
		return "", missingField("bucket_name")
	}
	if err := checkSegment("bucket_name", bucket); err != nil {
		return "", err
	}

	fields := make([]string, 0, len(InfoKeys))
	for _, key := range InfoKeys {
		v, err := md.Require(key)
		if err != nil {
			return "", err
		}
		if key != "tumour_normal_designation" {
			if err := checkSegment(key, v); err != nil {
				return "", err
			}
		}
		fields = append(fields, v)
	}
	strategy, program, donor, sample, designation := fields[0], fields[1], fields[2], fields[3], fields[4]

	return path.Join(bucket, ObjectKeyPrefix, strategy, program, donor,
		sample+"."+SampleDesignation(designation)), nil
}

// ObjectKey derives the storage key a payload document is uploaded under
func ObjectKey(bucket string, p Payload, md Metadata) (string, error) {
	payloadType, err := p.Type()
	if err != nil {
		return "", err
	}
	bundleID := p.ID()
	if bundleID == "" {
		return "", missingField("id")
	}
	if err := checkSegment("id", bundleID); err != nil {
		return "", err
	}

	// Resolve the type-specific segments before touching metadata so an
	// unknown type is reported as such.
	var segments []string
	switch payloadType {
	case TypeSequencingExperiment, TypeDNAAlignmentQC:
		// no extra segments
	case TypeLaneSeqSubmission, TypeLaneSeqQC:
		readGroup, err := p.Lookup("inputs", "submitter_read_group_id")
		if err != nil {
			return "", err
		}
		if err := checkSegment("inputs.submitter_read_group_id", readGroup); err != nil {
			return "", err
		}
		segments = append(segments, readGroup)
	case TypeDNAAlignment:
		name, err := p.Lookup("files", "aligned_seq", "name")
		if err != nil {
			return "", err
		}
		segments = append(segments, AlignmentFormat(name))
	case TypeSomaticVariantCall:
		tool, err := p.Lookup("analysis", "tool", "short_name")
		if err != nil {
			return "", err
		}
		vcf, err := p.Lookup("files", "vcf", "name")
		if err != nil {
			return "", err
		}
		dataType, err := VCFDataTypeSegment(vcf)
		if err != nil {
			return "", err
		}
		if err := checkSegment("analysis.tool.short_name", tool); err != nil {
			return "", err
		}
		if err := checkSegment("files.vcf.name data type segment", dataType); err != nil {
			return "", err
		}
		segments = append(segments, tool, dataType)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownPayloadType, payloadType)
	}

	base, err := BasePath(bucket, md)
	if err != nil {
		return "", err
	}

	parts := append([]string{base, payloadType}, segments...)
	parts = append(parts, p.FileName())
	return path.Join(parts...), nil
}

// AlignmentFormat returns "bam" for names ending in bam and "cram" otherwise
func AlignmentFormat(name string) string {
	if strings.HasSuffix(name, "bam") {
		return "bam"
	}
	return "cram"
}

// VCFDataTypeSegment returns the third-from-last dot segment of a VCF name
// "x.sanger.snv.vcf.gz" -> "snv"
func VCFDataTypeSegment(name string) (string, error) {
	parts := strings.Split(name, ".")
	if len(parts) < 3 || parts[len(parts)-3] == "" {
		return "", missingField("files.vcf.name data type segment")
	}
	return parts[len(parts)-3], nil
}

// checkSegment rejects values that would change the shape of an object key
// once joined: path separators and the "." and ".." names.
func checkSegment(field, value string) error {
	if strings.ContainsAny(value, `/\`) || value == "." || value == ".." {
		return invalidField(field)
	}
	return nil
}
