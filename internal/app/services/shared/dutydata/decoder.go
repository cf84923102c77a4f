package dutydata

import (
	"duty-service/internal/pkg/exceptions"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = ".json"
	formatYAML = ".yaml"
	formatYML  = ".yml"
	formatTOML = ".toml"
)

// decode picks the codec from the document name's extension.
func decode(name string, data []byte, v interface{}) error {
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case formatJSON:
		err = json.Unmarshal(data, v)
	case formatYAML, formatYML:
		err = yaml.Unmarshal(data, v)
	case formatTOML:
		err = toml.Unmarshal(data, v)
	default:
		return exceptions.ErrDutyDataUnsupportedFormat(name)
	}
	if err != nil {
		return exceptions.ErrDutyDataDecode(err, name)
	}
	return nil
}

type rosterDocument struct {
	Roster []string `json:"roster" yaml:"roster" toml:"roster"`
}

type scheduleDocument struct {
	Schedule map[string][]string `json:"schedule" yaml:"schedule" toml:"schedule"`
}

type nameMapDocument struct {
	Names map[string]string `json:"names" yaml:"names" toml:"names"`
}

// decodeRoster accepts {"roster": [...]} or a bare list.
func decodeRoster(name string, data []byte) ([]string, error) {
	var document rosterDocument
	if err := decode(name, data, &document); err == nil && len(document.Roster) > 0 {
		return document.Roster, nil
	}
	var roster []string
	if err := decode(name, data, &roster); err != nil {
		return nil, err
	}
	return roster, nil
}

// decodeSchedule accepts {"schedule": {...}} or a bare date map.
func decodeSchedule(name string, data []byte) (map[string][]string, error) {
	var document scheduleDocument
	if err := decode(name, data, &document); err == nil && len(document.Schedule) > 0 {
		return document.Schedule, nil
	}
	var schedule map[string][]string
	if err := decode(name, data, &schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// decodeNameMap accepts {"names": {...}} or a bare id map.
func decodeNameMap(name string, data []byte) (map[string]string, error) {
	var document nameMapDocument
	if err := decode(name, data, &document); err == nil && len(document.Names) > 0 {
		return document.Names, nil
	}
	var names map[string]string
	if err := decode(name, data, &names); err != nil {
		return nil, err
	}
	return names, nil
}
