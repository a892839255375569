package validation

import (
	stderrors "errors"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/api/request"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/report"
)

func ValidateDashboardRequest(req request.DashboardRequest) error {
	errors := make(map[string]string)

	if err := ValidateCurrency(req.Currency); err != nil {
		errors["currency"] = err.Error()
	}

	// Optional; the configured reference is used when empty
	if req.Reference != "" {
		if err := ValidateCurrency(req.Reference); err != nil {
			errors["reference"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateExportRequest validates the selection and resolves the export format.
func ValidateExportRequest(req request.ExportRequest) (report.Format, error) {
	errors := make(map[string]string)

	if err := ValidateDashboardRequest(req.DashboardRequest); err != nil {
		var verr *Error
		if stderrors.As(err, &verr) {
			for k, v := range verr.Fields {
				errors[k] = v
			}
		}
	}

	format, err := report.ParseFormat(req.Format)
	if err != nil {
		errors["format"] = "format must be one of csv, xlsx, pdf"
	}

	if len(errors) > 0 {
		return "", &Error{Fields: errors}
	}
	return format, nil
}
