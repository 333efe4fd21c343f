// File: services/assistant/decode.go
package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"barberpro/models"
)

// DecodeProposal parses the backend's answer into a proposal. The model is
// asked for bare JSON but may still wrap it in code fences or surrounding
// prose; everything outside the outermost object is stripped before
// decoding. An undecodable answer is ErrMalformedResponse.
func DecodeProposal(raw string) (*models.BookingProposal, error) {
	payload := extractJSON(raw)
	if payload == "" {
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformedResponse)
	}

	var p models.BookingProposal
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if strings.TrimSpace(p.Reply) == "" {
		return nil, fmt.Errorf("%w: missing suggestedReply", ErrMalformedResponse)
	}
	p.RawOutput = raw
	return &p, nil
}

func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Strip a markdown fence if present ("```json ... ```" or "``` ... ```").
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}

	// Cut leading/trailing prose around the outermost object.
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
