package storage

import (
	"encoding/json"
	"errors"

	"daktylos/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

// Stamp fills in the current schema and codec versions.
func Stamp(record model.InteractionRecord) model.InteractionRecord {
	record.SchemaVersion = CurrentSchemaVersion
	record.CodecVersion = CurrentCodecVersion
	return record
}

// StampSummary fills in the current schema and codec versions.
func StampSummary(summary model.RunSummary) model.RunSummary {
	summary.SchemaVersion = CurrentSchemaVersion
	summary.CodecVersion = CurrentCodecVersion
	return summary
}

func EncodeInteraction(record model.InteractionRecord) ([]byte, error) {
	return json.Marshal(record)
}

func DecodeInteraction(data []byte) (model.InteractionRecord, error) {
	var record model.InteractionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.InteractionRecord{}, err
	}
	if err := checkVersion(record.VersionedRecord); err != nil {
		return model.InteractionRecord{}, err
	}
	return record, nil
}

func EncodeRunSummary(summary model.RunSummary) ([]byte, error) {
	return json.Marshal(summary)
}

func DecodeRunSummary(data []byte) (model.RunSummary, error) {
	var summary model.RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return model.RunSummary{}, err
	}
	if err := checkVersion(summary.VersionedRecord); err != nil {
		return model.RunSummary{}, err
	}
	return summary, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
