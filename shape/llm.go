package shape

import (
	"context"
	"strings"

	"github.com/eventpress/speakerkit/log"
	"github.com/eventpress/speakerkit/speaker"
	"github.com/eventpress/speakerkit/utils"
)

// bioResponse is the structured object the generation service must return
// for bio shaping. Field names are part of the prompt contract.
type bioResponse struct {
	Short  string `json:"short"`
	Medium string `json:"medium"`
	Intro  string `json:"intro"`
}

// sessionResponse is the structured object for session shaping.
type sessionResponse struct {
	Abstract  string   `json:"abstract"`
	Takeaways []string `json:"takeaways"`
}

func (s *Shaper) shapeDelegated(ctx context.Context, rec *speaker.Record) *speaker.ProcessedContent {
	pc := &speaker.ProcessedContent{}

	bio, ok := s.generateBio(ctx, rec)
	if !ok {
		pc.GenerationFailed = true
	}
	pc.BioShort = bio.Short
	pc.BioMedium = bio.Medium
	pc.BioIntro = bio.Intro

	session, ok := s.generateSession(ctx, rec)
	if !ok {
		pc.GenerationFailed = true
	}
	pc.SessionAbstract = session.Abstract
	pc.Takeaways = session.Takeaways

	pc.AltText = s.generateAltText(ctx, rec)
	return pc
}

func (s *Shaper) generateBio(ctx context.Context, rec *speaker.Record) (bioResponse, bool) {
	raw, err := s.gen.Generate(ctx, s.bioPrompt(rec))
	if err != nil {
		log.Error().Str("speaker", rec.DisplayName()).Err(err).Msg("bio generation failed")
		return bioSentinel(), false
	}

	var resp bioResponse
	if err := utils.DecodeJSONObject(raw, &resp); err != nil {
		log.Warn().Str("speaker", rec.DisplayName()).Err(err).Msg("bio response not decodable")
		return bioSentinel(), false
	}
	return resp, true
}

func (s *Shaper) generateSession(ctx context.Context, rec *speaker.Record) (sessionResponse, bool) {
	raw, err := s.gen.Generate(ctx, s.sessionPrompt(rec))
	if err != nil {
		log.Error().Str("speaker", rec.DisplayName()).Err(err).Msg("session generation failed")
		return sessionSentinel(), false
	}

	var resp sessionResponse
	if err := utils.DecodeJSONObject(raw, &resp); err != nil {
		log.Warn().Str("speaker", rec.DisplayName()).Err(err).Msg("session response not decodable")
		return sessionSentinel(), false
	}
	return resp, true
}

// generateAltText asks for plain text, not JSON; the trimmed response is
// used as-is. No headshot means no call at all.
func (s *Shaper) generateAltText(ctx context.Context, rec *speaker.Record) string {
	if strings.TrimSpace(rec.HeadshotPath) == "" {
		return AltTextMissing
	}

	raw, err := s.gen.Generate(ctx, s.altTextPrompt(rec))
	if err != nil {
		log.Error().Str("speaker", rec.DisplayName()).Err(err).Msg("alt text generation failed")
		return SentinelAltText
	}
	return strings.TrimSpace(raw)
}

func bioSentinel() bioResponse {
	return bioResponse{Short: SentinelBio, Medium: SentinelBio, Intro: SentinelBio}
}

func sessionSentinel() sessionResponse {
	return sessionResponse{
		Abstract:  SentinelSession,
		Takeaways: []string{SentinelSession, SentinelSession, SentinelSession},
	}
}
