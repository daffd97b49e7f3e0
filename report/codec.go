package report

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalSolution encodes a Solution as JSON, matching spec §6.3.
func MarshalSolution(s Solution) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// MarshalReport encodes a Report as JSON, matching spec §6.4.
func MarshalReport(r Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// UnmarshalSolution decodes a Solution previously produced by MarshalSolution.
func UnmarshalSolution(data []byte) (Solution, error) {
	var s Solution
	err := json.Unmarshal(data, &s)
	return s, err
}

// UnmarshalReport decodes a Report previously produced by MarshalReport.
func UnmarshalReport(data []byte) (Report, error) {
	var r Report
	err := json.Unmarshal(data, &r)
	return r, err
}

// UnmarshalJSON decodes data into v using the same jsoniter codec as the
// rest of this package, for callers (e.g. the CLI's config loader) that
// need JSON decoding of types outside this package.
func UnmarshalJSON(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
