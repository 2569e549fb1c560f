package ui

import "testing"

func TestFormatETA(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{61, "1:01"},
		{600, "10:00"},
		{3661, "1:01:01"},
		{7200, "2:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatETA(tt.seconds); got != tt.want {
				t.Errorf("formatETA(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestProgressFinishIdempotent(t *testing.T) {
	p := NewProgress()
	p.Finish()
	p.Finish()
	p.Update(50, 10) // no-op after Finish
	if !p.done {
		t.Error("progress should stay finished")
	}
}
