package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wfparrish/rhcsa-command-tool/internal/model"
	"gopkg.in/yaml.v3"
)

// questionFile is the object form of a question file: {"questions": [...]}.
type questionFile struct {
	Questions []model.Question `json:"questions" yaml:"questions"`
}

// LoadFile reads a JSON or YAML question file. Both a top-level list and the
// {questions: [...]} object form are accepted; unknown fields are rejected.
func LoadFile(path string) ([]model.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStartupData, path, err)
	}

	var questions []model.Question
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		questions, err = ParseYAML(data)
	default:
		questions, err = ParseJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrStartupData, path, err)
	}
	return questions, nil
}

func ParseJSON(data []byte) ([]model.Question, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.DisallowUnknownFields()

	var questions []model.Question
	if trimmed[0] == '[' {
		if err := decoder.Decode(&questions); err != nil {
			return nil, err
		}
	} else {
		var file questionFile
		if err := decoder.Decode(&file); err != nil {
			return nil, err
		}
		questions = file.Questions
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after question list")
	}
	return questions, nil
}

func ParseYAML(data []byte) ([]model.Question, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var questions []model.Question
	if root.Content[0].Kind == yaml.SequenceNode {
		if err := decoder.Decode(&questions); err != nil {
			return nil, err
		}
	} else {
		var file questionFile
		if err := decoder.Decode(&file); err != nil {
			return nil, err
		}
		questions = file.Questions
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("multiple YAML documents are not supported")
		}
		return nil, err
	}
	return questions, nil
}
