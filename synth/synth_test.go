package synth

import (
	"strings"
	"testing"

	"github.com/eventpress/speakerkit/config"
	"github.com/eventpress/speakerkit/speaker"
)

func newSynthesizer() *Synthesizer {
	return New(config.DefaultPipeline())
}

func TestIsPlaceholderTitle(t *testing.T) {
	s := newSynthesizer()

	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"tbd upper", "TBD", true},
		{"tba", "tba", true},
		{"working title alone", "Working Title", true},
		{"working title embedded", "Working Title - AI Session", true},
		{"temp token", "Temp", true},
		{"temp in brackets", "[temp]", true},
		{"title tbd", "Title TBD", true},
		{"real title", "Shipping Search at Scale", false},
		{"temp inside word", "Contemporary Design Patterns", false},
		{"tempest", "Staging The Tempest", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.IsPlaceholderTitle(tt.title); got != tt.want {
				t.Errorf("IsPlaceholderTitle(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestExtractExpertise(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single label", "Fifteen years in application security.", []string{"Security"}},
		{"rule order", "Builds machine learning models to detect threats.", []string{"AI", "Security"}},
		{"token boundary", "They maintain aging platforms.", nil},
		{"none", "Enjoys long walks.", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractExpertise(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractExpertise(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("label[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGenerateSessionTitles(t *testing.T) {
	s := newSynthesizer()

	t.Run("ai bucket via legacy keyword", func(t *testing.T) {
		titles := s.GenerateSessionTitles(
			"AI is transforming healthcare delivery.",
			"Modernizing legacy systems with automation.",
		)
		if titles[0] != "From Legacy to Leading Edge: AI in Practice" {
			t.Errorf("titles[0] = %q", titles[0])
		}
		if titles[1] != "What AI Actually Changes About Your Work" {
			t.Errorf("titles[1] = %q", titles[1])
		}
	})

	t.Run("security bucket", func(t *testing.T) {
		titles := s.GenerateSessionTitles("Leads a security research group.", "")
		if titles[0] != "Securing What Matters: Security Lessons From the Field" {
			t.Errorf("titles[0] = %q", titles[0])
		}
	})

	t.Run("generic fallback", func(t *testing.T) {
		titles := s.GenerateSessionTitles("Enjoys gardening and long hikes.", "")
		if titles[0] != "Lessons From the Field: A Practitioner's Guide to Technology" {
			t.Errorf("titles[0] = %q", titles[0])
		}
	})
}

func TestGenerateSessionDescription(t *testing.T) {
	s := newSynthesizer()

	tests := []struct {
		name string
		bio  string
		want string
	}{
		{"no expertise", "Enjoys gardening.", "practical approaches drawn from"},
		{"one label", "A security researcher.", "practical approaches to security,"},
		{"two labels", "Machine learning for threat detection.", "practical approaches to ai and security,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.GenerateSessionDescription(tt.bio, "")
			if !strings.Contains(got, tt.want) {
				t.Errorf("description %q does not contain %q", got, tt.want)
			}
			if !strings.HasPrefix(got, "In this session, you'll learn") {
				t.Errorf("description %q missing attendee framing", got)
			}
		})
	}
}

func TestGenerateTechRequirements(t *testing.T) {
	s := newSynthesizer()

	t.Run("base list", func(t *testing.T) {
		items := s.GenerateTechRequirements("A plain bio.", "A plain talk.")
		if len(items) != 4 {
			t.Fatalf("got %d items, want 4", len(items))
		}
		if items[0] != "Wireless lavalier microphone" {
			t.Errorf("items[0] = %q", items[0])
		}
	})

	t.Run("demo prepends wired internet", func(t *testing.T) {
		items := s.GenerateTechRequirements("A plain bio.", "Includes a live demo of the tooling.")
		if items[0] != "Wired internet connection for live demo" {
			t.Errorf("items[0] = %q", items[0])
		}
		if len(items) != 4 {
			t.Errorf("got %d items, want 4", len(items))
		}
	})

	t.Run("security bio adds isolated network", func(t *testing.T) {
		items := s.GenerateTechRequirements("A security researcher.", "")
		joined := strings.Join(items, "; ")
		if len(items) != 4 {
			t.Errorf("got %d items, want 4", len(items))
		}
		if strings.Contains(joined, "Isolated network") {
			t.Errorf("isolated network should be trimmed out of the top four: %v", items)
		}
	})
}

func TestFill(t *testing.T) {
	s := newSynthesizer()

	t.Run("placeholder title replaced in place", func(t *testing.T) {
		rec := &speaker.Record{
			Name:         "Ada Quine",
			Bio:          "Ada Quine leads a security research team focused on cloud infrastructure and incident response tooling.",
			SessionTitle: "TBD",
		}
		s.Fill(rec)
		if rec.SessionTitle != "Securing What Matters: Security Lessons From the Field" {
			t.Errorf("SessionTitle = %q", rec.SessionTitle)
		}
		if rec.AlternateTitle != "Before the Breach: Practical Security for Busy Teams" {
			t.Errorf("AlternateTitle = %q", rec.AlternateTitle)
		}
	})

	t.Run("real title untouched", func(t *testing.T) {
		rec := &speaker.Record{Name: "Ada Quine", Bio: "A security bio long enough.", SessionTitle: "Threats in Depth"}
		s.Fill(rec)
		if rec.SessionTitle != "Threats in Depth" {
			t.Errorf("SessionTitle = %q", rec.SessionTitle)
		}
		if rec.AlternateTitle != "" {
			t.Errorf("AlternateTitle = %q, want empty", rec.AlternateTitle)
		}
	})

	t.Run("missing fields synthesized into the enrichment", func(t *testing.T) {
		rec := &speaker.Record{Name: "Ada Quine", SessionTitle: "Threats in Depth"}
		e := s.Fill(rec)

		if !e.DescSynthesized || e.Description == "" {
			t.Error("description not synthesized")
		}
		if !e.TechSynthesized || e.TechRequirements == "" {
			t.Error("tech requirements not synthesized")
		}
		if !e.BioSynthesized || e.Bio == "" {
			t.Error("bio not synthesized")
		}

		// The raw record keeps what the speaker provided.
		if rec.Bio != "" || rec.SessionDescription != "" || rec.TechRequirements != "" {
			t.Error("Fill must not write synthesized content into the raw record fields")
		}
	})

	t.Run("provided fields pass through", func(t *testing.T) {
		rec := &speaker.Record{
			Name:               "Ada Quine",
			Bio:                strings.Repeat("A detailed sentence about prior work in security operations. ", 5),
			SessionTitle:       "Threats in Depth",
			SessionDescription: "In this session, you'll learn how attackers pivot through flat networks and what segmentation buys you.",
			TechRequirements:   "Projector and wireless mic",
		}
		e := s.Fill(rec)
		if e.DescSynthesized || e.TechSynthesized || e.BioSynthesized {
			t.Errorf("unexpected synthesis flags: %+v", e)
		}
		if e.TechRequirements != "Projector and wireless mic" {
			t.Errorf("TechRequirements = %q", e.TechRequirements)
		}
	})
}

func TestEnhanceBio(t *testing.T) {
	s := newSynthesizer()

	t.Run("empty bio gets a base", func(t *testing.T) {
		rec := &speaker.Record{Name: "Ada Quine", SessionDescription: "A session on security operations."}
		got := s.EnhanceBio(rec, "")
		if !strings.Contains(got, "Ada brings deep experience in Security") {
			t.Errorf("bio = %q", got)
		}
		if !strings.Contains(got, "Attendees can expect") {
			t.Errorf("bio missing closing line: %q", got)
		}
	})

	t.Run("unnamed speaker uses they", func(t *testing.T) {
		rec := &speaker.Record{}
		got := s.EnhanceBio(rec, "")
		if !strings.Contains(got, "They bring ") {
			t.Errorf("bio = %q, want third-person phrasing", got)
		}
	})
}
