package validation

import (
	"encoding/json"
	"strings"
	"unicode"
)

// ReportValidator checks inputs of the reporting API before they reach a
// registry.
type ReportValidator struct {
	maxClassNameLen     int
	maxKeyLen           int
	maxValueLen         int
	maxRetentionMinutes int
}

func NewReportValidator(maxClassNameLen, maxKeyLen, maxValueLen, maxRetentionMinutes int) *ReportValidator {
	return &ReportValidator{
		maxClassNameLen:     maxClassNameLen,
		maxKeyLen:           maxKeyLen,
		maxValueLen:         maxValueLen,
		maxRetentionMinutes: maxRetentionMinutes,
	}
}

func (v *ReportValidator) ValidateClassName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyClassName
	}
	if len(name) > v.maxClassNameLen {
		return ErrClassNameTooLong
	}
	if strings.ContainsFunc(name, unicode.IsControl) {
		return ErrInvalidClassName
	}
	return nil
}

func (v *ReportValidator) ValidateRetention(minutes int) error {
	if minutes < 1 || minutes > v.maxRetentionMinutes {
		return ErrRetentionOutOfRange
	}
	return nil
}

func (v *ReportValidator) ValidateCustomDataKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	if len(key) > v.maxKeyLen {
		return ErrKeyTooLong
	}
	return nil
}

// ValidateCustomData checks the key and that value encodes to JSON within the
// size limit, since reports serialize it as is.
func (v *ReportValidator) ValidateCustomData(key string, value any) error {
	if err := v.ValidateCustomDataKey(key); err != nil {
		return err
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return ErrInvalidValue
	}
	if len(encoded) > v.maxValueLen {
		return ErrValueTooLarge
	}
	return nil
}
