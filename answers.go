package aoc

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Answer holds the known answers for one input file. Unknown parts are
// nil.
type Answer struct {
	A *int64 `yaml:"a"`
	B *int64 `yaml:"b"`
}

// Answers maps day directory ("day1") to variant tag ("sample") to the
// known answers, as stored in input_data/answers.yaml:
//
//	day1:
//	  sample: {a: 3, b: 6}
type Answers map[string]map[string]Answer

// AnswersPath returns the location of the answer manifest under root.
func AnswersPath(root string) string {
	return filepath.Join(root, "input_data", "answers.yaml")
}

// LoadAnswers reads the answer manifest under root. A missing manifest is
// not an error and yields no answers.
func LoadAnswers(root string) (Answers, error) {
	data, err := os.ReadFile(AnswersPath(root))
	if os.IsNotExist(err) {
		return Answers{}, nil
	}
	if err != nil {
		return nil, err
	}
	var a Answers
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, AnswersPath(root), err)
	}
	if a == nil {
		a = Answers{}
	}
	return a, nil
}

// Lookup returns the known answer for part ("A" or "B") of day d's
// variant v.
func (a Answers) Lookup(d Day, v Variant, part string) (int64, bool) {
	ans, ok := a[d.Dir()][v.String()]
	if !ok {
		return 0, false
	}
	var p *int64
	switch part {
	case "A":
		p = ans.A
	case "B":
		p = ans.B
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Check compares got against the known answer, if there is one.
func (a Answers) Check(d Day, v Variant, part string, got int64) error {
	want, ok := a.Lookup(d, v, part)
	if !ok || want == got {
		return nil
	}
	return fmt.Errorf("%w: %s %s part %s = %d, want %d", ErrWrongAnswer, d, v, part, got, want)
}
