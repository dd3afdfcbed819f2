package form

import (
	"fmt"

	"github.com/aniolquer/node-smart-form/pkg/documents"
)

// Limits bounds the attachments accepted at submission time. This check is
// independent from Evaluate: the decision engine answers "which documents",
// the limits answer "how much file".
type Limits struct {
	MaxFileBytes        int64
	MaxFilesPerCategory int
	MaxTotalBytes       int64
}

// DefaultLimits matches what the downstream form-processing endpoint
// accepts.
var DefaultLimits = Limits{
	MaxFileBytes:        10 << 20,
	MaxFilesPerCategory: 5,
	MaxTotalBytes:       25 << 20,
}

// Violation codes for attachment limits.
const (
	CodeFileTooLarge    Code = "file_too_large"
	CodeTooManyFiles    Code = "too_many_files"
	CodeTotalSizeTooBig Code = "total_size_too_big"
)

// Violation is one attachment-limit breach.
type Violation struct {
	Code     Code               `json:"code"`
	Category documents.Category `json:"category,omitempty"`
	File     string             `json:"file,omitempty"`
	Message  string             `json:"message"`
}

// CheckAttachments applies the submission-time limits to every attached
// file, in category order. An empty result means the attachments fit.
func CheckAttachments(snap Snapshot, limits Limits) []Violation {
	var violations []Violation
	var total int64

	for _, cat := range documents.All {
		files := snap.Attached(cat)
		if limits.MaxFilesPerCategory > 0 && len(files) > limits.MaxFilesPerCategory {
			violations = append(violations, Violation{
				Code:     CodeTooManyFiles,
				Category: cat,
				Message:  fmt.Sprintf("%s: at most %d files per document", cat, limits.MaxFilesPerCategory),
			})
		}
		for _, f := range files {
			total += f.Size
			if limits.MaxFileBytes > 0 && f.Size > limits.MaxFileBytes {
				violations = append(violations, Violation{
					Code:     CodeFileTooLarge,
					Category: cat,
					File:     f.Name,
					Message:  fmt.Sprintf("%s exceeds the %d MB per-file limit", f.Name, limits.MaxFileBytes>>20),
				})
			}
		}
	}

	if limits.MaxTotalBytes > 0 && total > limits.MaxTotalBytes {
		violations = append(violations, Violation{
			Code:    CodeTotalSizeTooBig,
			Message: fmt.Sprintf("attachments total %d bytes, over the %d MB limit", total, limits.MaxTotalBytes>>20),
		})
	}

	return violations
}
