package request

import (
	"testing"

	"permitpro/internal/domain/lifecycle"
)

func TestUpdatePackageStatusRequest_ResolveEvent(t *testing.T) {
	cases := []struct {
		status string
		event  lifecycle.Event
		ok     bool
	}{
		{"Submitted", lifecycle.EventSubmit, true},
		{"Completed", lifecycle.EventComplete, true},
		{"Draft", lifecycle.EventReturnToDraft, true},
		{" Submitted ", lifecycle.EventSubmit, true},
		{"submitted", "", false},
		{"Rejected", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		event, ok := UpdatePackageStatusRequest{Status: tc.status}.ResolveEvent()
		if ok != tc.ok || event != tc.event {
			t.Fatalf("status %q: expected (%q, %v), got (%q, %v)", tc.status, tc.event, tc.ok, event, ok)
		}
	}
}
