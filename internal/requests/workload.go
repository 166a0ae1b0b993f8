package requests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadScheduleRequests reads a workload file. Files ending in .json are
// decoded as JSON, anything else as YAML. Both reject unknown fields so a
// typo in a key fails loudly instead of silently dropping a job attribute.
func LoadScheduleRequests(path string) (*ScheduleRequests, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return DecodeJSON(bytes.NewReader(data))
	}
	return DecodeYAML(bytes.NewReader(data))
}

func DecodeYAML(r io.Reader) (*ScheduleRequests, error) {
	var req ScheduleRequests
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&req); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse workload YAML: %w", err)
	}
	return &req, nil
}

func DecodeJSON(r io.Reader) (*ScheduleRequests, error) {
	var req ScheduleRequests
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse workload JSON: %w", err)
	}
	return &req, nil
}

// WriteYAML writes req in the format LoadScheduleRequests reads back.
func WriteYAML(w io.Writer, req *ScheduleRequests) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(req); err != nil {
		return err
	}
	return encoder.Close()
}
