package utils

import "testing"

func TestContainsKeyword(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keyword string
		want    bool
	}{
		{"long keyword substring", "Experienced in cybersecurity audits", "security", true},
		{"long keyword absent", "A specialist in logistics", "security", false},
		{"multi word phrase", "Background in machine learning research", "machine learning", true},
		{"short keyword as token", "Building AI products since 2019", "ai", true},
		{"short keyword inside word", "They maintain legacy platforms", "ai", false},
		{"short keyword with punctuation", "Focus areas: AI, robotics", "ai", true},
		{"case folding", "LEADERSHIP coaching", "leadership", true},
		{"empty text", "", "ai", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsKeyword(tt.text, tt.keyword); got != tt.want {
				t.Errorf("ContainsKeyword(%q, %q) = %v, want %v", tt.text, tt.keyword, got, tt.want)
			}
		})
	}
}

func TestContainsAnyKeyword(t *testing.T) {
	keywords := []string{"ai", "machine learning", "artificial intelligence"}

	if !ContainsAnyKeyword("We apply machine learning to scheduling", keywords) {
		t.Error("expected a match for 'machine learning'")
	}
	if ContainsAnyKeyword("They maintain aging mainframes", keywords) {
		t.Error("expected no match: 'maintain' must not count as 'ai'")
	}
}
