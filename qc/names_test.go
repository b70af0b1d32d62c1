package qc

import "testing"

func TestExtractFilenameName(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"underscores", "/uploads/olivia_thorne.jpg", "olivia thorne"},
		{"hyphens", "marcus-webb.png", "marcus webb"},
		{"mixed separators", "jean-luc_oneill.webp", "jean luc oneill"},
		{"no separators", "headshot.jpg", "headshot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractFilenameName(tt.path); got != tt.want {
				t.Errorf("ExtractFilenameName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNamesMatch(t *testing.T) {
	tests := []struct {
		name  string
		name1 string
		name2 string
		want  bool
	}{
		{"exact", "Olivia Thorne", "olivia thorne", true},
		{"containment with honorific", "Dr. Olivia Thorne", "olivia thorne", true},
		{"partial filename", "Olivia Thorne", "olivia", true},
		{"minor variation", "Jon Smith", "john smith", true},
		{"different people", "Jane Doe", "John Smith", false},
		{"empty name", "", "olivia thorne", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NamesMatch(tt.name1, tt.name2, 0.6); got != tt.want {
				t.Errorf("NamesMatch(%q, %q) = %v, want %v", tt.name1, tt.name2, got, tt.want)
			}
		})
	}
}

func TestSimilarityRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "abc", "abc", 1},
		{"disjoint", "abc", "xyz", 0},
		{"both empty", "", "", 1},
		{"one empty", "abc", "", 0},
		{"half common", "ab", "ax", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := similarityRatio(tt.a, tt.b); got != tt.want {
				t.Errorf("similarityRatio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
