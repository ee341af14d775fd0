package frontend

import (
	"os"

	"gopkg.in/yaml.v3"
)

func LoadTrackerConfig(filepath string) (*TrackerConfig, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content)
}

func Unmarshal(conf []byte) (*TrackerConfig, error) {
	var out TrackerConfig
	err := yaml.Unmarshal(conf, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
