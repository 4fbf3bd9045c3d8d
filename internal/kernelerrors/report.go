package kernelerrors

import "encoding/json"

// Report is a JSON-able view of an Error, for tooling (the REPL, editor
// integrations) that wants structured diagnostics rather than a formatted
// string. It carries no source span: the kernel itself never sees source
// positions.
type Report struct {
	Schema  string         `json:"schema"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// ToReport converts an Error to its JSON-able Report form.
func (e *Error) ToReport() *Report {
	return &Report{
		Schema:  "zoc.error/v1",
		Code:    string(e.Kind),
		Message: e.Message,
		Data:    e.Data,
	}
}

// ToJSON renders the report as deterministic JSON.
func (r *Report) ToJSON(indent bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(r, "", "  ")
	} else {
		data, err = json.Marshal(r)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
