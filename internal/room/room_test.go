package room

import "testing"

func TestIsStatusAdvanceAllowed(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusLobby, StatusPlacing, true},
		{StatusPlacing, StatusPlaying, true},
		{StatusPlacing, StatusLobby, true},
		{StatusPlacing, StatusEnded, true},
		{StatusPlaying, StatusEnded, true},
		{StatusLobby, StatusPlaying, false},
		{StatusEnded, StatusLobby, false},
		{StatusEnded, StatusPlaying, false},
		{StatusPlaying, StatusLobby, false},
	}
	for _, tc := range cases {
		if got := IsStatusAdvanceAllowed(tc.from, tc.to); got != tc.want {
			t.Errorf("IsStatusAdvanceAllowed(%s, %s) = %v, want %v",
				StatusLabel(tc.from), StatusLabel(tc.to), got, tc.want)
		}
	}
}

func TestStatusLabelRoundTrip(t *testing.T) {
	for _, status := range []Status{StatusLobby, StatusPlacing, StatusPlaying, StatusEnded} {
		if got := StatusFromLabel(StatusLabel(status)); got != status {
			t.Errorf("round trip for %v = %v", status, got)
		}
	}
	if got := StatusFromLabel("  lobby "); got != StatusLobby {
		t.Errorf("expected lenient parse, got %v", got)
	}
	if got := StatusFromLabel("bogus"); got != StatusUnspecified {
		t.Errorf("expected unspecified for unknown label, got %v", got)
	}
}

func TestStarted(t *testing.T) {
	if (Room{Status: StatusLobby}).Started() {
		t.Error("lobby room should not count as started")
	}
	if !(Room{Status: StatusPlacing}).Started() {
		t.Error("placing room should count as started")
	}
	if !(Room{Status: StatusPlaying}).Started() {
		t.Error("playing room should count as started")
	}
	if (Room{Status: StatusEnded}).Started() {
		t.Error("ended room should not count as started")
	}
}
