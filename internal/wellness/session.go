package wellness

import (
	"encoding/json"
	"time"
)

const (
	// ScaleLegacy sessions store a 1..5 score.
	ScaleLegacy = 1
	// ScaleCurrent sessions store a 0..25 score.
	ScaleCurrent = 2
)

// Session is one player's questionnaire of one day.
type Session struct {
	PlayerID     string    `json:"playerId" validate:"required"`
	Date         string    `json:"date" validate:"required,datetime=2006-01-02"`
	Answers      []int     `json:"answers" validate:"max=5,dive,min=1,max=5"`
	Score        int       `json:"score" validate:"min=0,max=25"`
	ScaleVersion int       `json:"scaleVersion" validate:"oneof=1 2"`
	Timestamp    time.Time `json:"timestamp"`
}

// UnmarshalJSON tags records written before the scale version existed. Those
// with a score of at most 5 are taken as legacy 1..5 records.
func (s *Session) UnmarshalJSON(data []byte) error {
	type plain Session
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.ScaleVersion == 0 {
		if p.Score <= 5 {
			p.ScaleVersion = ScaleLegacy
		} else {
			p.ScaleVersion = ScaleCurrent
		}
	}
	*s = Session(p)
	return nil
}

// NormalizedScore is the score on the 0..25 scale.
func (s *Session) NormalizedScore() int {
	if s.ScaleVersion == ScaleLegacy {
		return clampScore(s.Score * 5)
	}
	return s.Score
}

func (s *Session) HasAnswers() bool {
	return len(s.Answers) > 0
}
