package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldJob is the structured log field key for the job title being ranked.
	FieldJob = "job_title"
	// FieldDataSource is the structured log field key for the candidate data origin.
	FieldDataSource = "data_source"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// RankingFields returns standard zap fields that describe a ranking run.
// Empty values are ignored to keep log entries compact when information is missing.
func RankingFields(jobTitle, dataSource string) []zap.Field {
	return StringFields(
		StringField{Key: FieldJob, Value: jobTitle},
		StringField{Key: FieldDataSource, Value: dataSource},
	)
}

// WithRankingFields attaches the common ranking fields to the provided logger.
// If the logger is nil, a no-op logger is created to avoid panics.
func WithRankingFields(logger *zap.Logger, jobTitle, dataSource string) *zap.Logger {
	return WithFields(logger, RankingFields(jobTitle, dataSource)...)
}
