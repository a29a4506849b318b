package theme

import "testing"

func TestScoreGradientEnds(t *testing.T) {
	s := Default().Score
	if got := s.Hex(1); got != "#5b6ee1" {
		t.Errorf("low end = %s", got)
	}
	if got := s.Hex(10); got != "#ff6f9f" {
		t.Errorf("high end = %s", got)
	}
	if s.Hex(0) != s.Hex(1) || s.Hex(11) != s.Hex(10) {
		t.Errorf("out of range scores should clamp to the ends")
	}
	if s.Hex(5) == s.Hex(6) {
		t.Errorf("adjacent scores should differ")
	}
}
