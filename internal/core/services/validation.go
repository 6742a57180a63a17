package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/cashbook_app/internal/apperrors"
	"github.com/SscSPs/cashbook_app/internal/core/domain"
	"github.com/SscSPs/cashbook_app/internal/dto"
	"github.com/SscSPs/cashbook_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

func validateTenantCode(raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", apperrors.NewValidationFailedError("tenant code is required")
	}
	if utf8.RuneCountInString(code) > domain.MaxTenantCodeLength {
		return "", apperrors.NewValidationFailedError(fmt.Sprintf("tenant code must be at most %d characters", domain.MaxTenantCodeLength))
	}
	return code, nil
}

func validateTenantName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", apperrors.NewValidationFailedError("tenant name is required")
	}
	return name, nil
}

func validateAmount(raw *decimal.Decimal) (decimal.Decimal, error) {
	if raw == nil {
		return decimal.Zero, apperrors.NewValidationFailedError("amount is required")
	}
	amount := domain.NormalizeAmount(*raw)
	if !amount.IsPositive() {
		return decimal.Zero, apperrors.NewValidationFailedError("amount must be greater than zero")
	}
	if amount.GreaterThanOrEqual(domain.MaxAmount) {
		return decimal.Zero, apperrors.NewValidationFailedError("amount must be less than 10000000000")
	}
	return amount, nil
}

func validateEntryDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, apperrors.NewValidationFailedError("entry_date is required")
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, apperrors.NewValidationFailedError("entry_date must be a valid YYYY-MM-DD date")
	}
	return d, nil
}

// parseOptionalDate returns nil for an empty parameter.
func parseOptionalDate(field, raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("%s must be a valid YYYY-MM-DD date", field))
	}
	return &d, nil
}

func parseDateRange(fromField, fromRaw, toField, toRaw string) (*time.Time, *time.Time, error) {
	from, err := parseOptionalDate(fromField, fromRaw)
	if err != nil {
		return nil, nil, err
	}
	to, err := parseOptionalDate(toField, toRaw)
	if err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, apperrors.NewValidationFailedError(fmt.Sprintf("%s must not be after %s", fromField, toField))
	}
	return from, to, nil
}

func buildEntryFilter(params dto.ListCashEntriesParams) (domain.EntryFilter, error) {
	from, to, err := parseDateRange("date_from", params.DateFrom, "date_to", params.DateTo)
	if err != nil {
		return domain.EntryFilter{}, err
	}
	if params.Limit < 0 || params.Limit > pagination.MaxLimit {
		return domain.EntryFilter{}, apperrors.NewValidationFailedError(fmt.Sprintf("limit must be between 1 and %d", pagination.MaxLimit))
	}
	if params.Offset < 0 {
		return domain.EntryFilter{}, apperrors.NewValidationFailedError("offset must not be negative")
	}
	return domain.EntryFilter{DateFrom: from, DateTo: to, Limit: params.Limit, Offset: params.Offset}, nil
}

func parseIntParam(field, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, apperrors.NewValidationFailedError(fmt.Sprintf("%s must be numeric", field))
	}
	return v, nil
}

// resolveSummaryPeriod derives the month of a summary request. A date alone
// selects its own month. Year and month select the period; when a date is
// also given it is moved into that period keeping its day of month.
func resolveSummaryPeriod(params dto.SummaryParams) (domain.Period, *time.Time, error) {
	hasYear := strings.TrimSpace(params.Year) != ""
	hasMonth := strings.TrimSpace(params.Month) != ""

	var reference *time.Time
	year, month := 0, 0
	if strings.TrimSpace(params.Date) != "" {
		d, err := domain.ParseDate(params.Date)
		if err != nil {
			return domain.Period{}, nil, apperrors.NewValidationFailedError("date must be a valid YYYY-MM-DD date")
		}
		reference = &d
		year, month = d.Year(), int(d.Month())
	} else if !hasYear || !hasMonth {
		return domain.Period{}, nil, apperrors.NewValidationFailedError("year and month are required")
	}

	var err error
	if hasYear {
		if year, err = parseIntParam("year", params.Year); err != nil {
			return domain.Period{}, nil, err
		}
	}
	if hasMonth {
		if month, err = parseIntParam("month", params.Month); err != nil {
			return domain.Period{}, nil, err
		}
	}

	period, err := domain.NewPeriod(year, month)
	if err != nil {
		return domain.Period{}, nil, apperrors.NewValidationFailedError(err.Error())
	}

	if reference == nil || (!hasYear && !hasMonth) {
		return period, nil, nil
	}
	moved := domain.WithMonth(*reference, period.Year, period.Month)
	return period, &moved, nil
}

func normalizeDescription(raw *string) *string {
	if raw == nil {
		return nil
	}
	d := strings.TrimSpace(*raw)
	if d == "" {
		return nil
	}
	return &d
}
