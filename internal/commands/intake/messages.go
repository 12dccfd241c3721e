package intakecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const importBatchMessageType = "intake.bundle.import_batch"
const validateBundlesMessageType = "intake.bundle.validate"

// ImportBatchCommand requests a full pass over the intake directory.
type ImportBatchCommand struct {
	IntakeDir string `json:"intake_dir"`
}

// Type implements command.Message.
func (ImportBatchCommand) Type() string { return importBatchMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m ImportBatchCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.IntakeDir) == "" {
		errs["intake_dir"] = validation.NewError("intake.bundle.import_batch.intake_dir_required", "intake_dir is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateBundlesCommand requests a strict structural check of one bundle or,
// when Bundle is empty, of every bundle in the intake directory.
type ValidateBundlesCommand struct {
	IntakeDir string `json:"intake_dir"`
	Bundle    string `json:"bundle,omitempty"`
}

// Type implements command.Message.
func (ValidateBundlesCommand) Type() string { return validateBundlesMessageType }

// Validate ensures the message carries enough to locate bundles.
func (m ValidateBundlesCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.IntakeDir) == "" && strings.TrimSpace(m.Bundle) == "" {
		errs["intake_dir"] = validation.NewError("intake.bundle.validate.target_required", "intake_dir or bundle is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
