package rank

import (
	"reflect"
	"testing"
)

func TestExtractSkills(t *testing.T) {
	vocab := NewVocabulary([]string{"python", "sql", "docker", "c"})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"basic", "Built pipelines in Python and SQL", []string{"python", "sql"}},
		{"case insensitive", "PYTHON python PyThOn", []string{"python"}},
		{"punctuation boundaries", "Skills: Python, SQL; Docker.", []string{"docker", "python", "sql"}},
		{"single letter term", "fluent in C and Go", []string{"c"}},
		{"substring is not a token", "pythonista sqlite", nil},
		{"empty text", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortedSkills(ExtractSkills(tt.text, vocab))
			if len(got) == 0 {
				got = nil
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractSkills(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestRequiredSkills(t *testing.T) {
	vocab := NewVocabulary([]string{"python", "sql", "react", "machine learning"})

	t.Run("intersection", func(t *testing.T) {
		got := SortedSkills(RequiredSkills("Looking for Python and React developers", vocab))
		want := []string{"python", "react"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("RequiredSkills = %v, want %v", got, want)
		}
	})

	t.Run("multi word terms never match", func(t *testing.T) {
		got := RequiredSkills("machine learning engineer wanted", vocab)
		if len(got) != 0 {
			t.Errorf("RequiredSkills = %v, want empty", SortedSkills(got))
		}
	})

	t.Run("empty jd", func(t *testing.T) {
		if got := RequiredSkills("", vocab); len(got) != 0 {
			t.Errorf("RequiredSkills(\"\") = %v, want empty", SortedSkills(got))
		}
	})
}

func TestNewVocabulary(t *testing.T) {
	v := NewVocabulary([]string{" Python ", "SQL", "python", "", "  "})
	if v.Len() != 2 {
		t.Errorf("Len() = %d, want 2", v.Len())
	}
	if !v.Has("PYTHON") || !v.Has("sql") {
		t.Error("Has() misses normalized terms")
	}
	want := []string{"python", "sql"}
	if got := v.Terms(); !reflect.DeepEqual(got, want) {
		t.Errorf("Terms() = %v, want %v", got, want)
	}
}
