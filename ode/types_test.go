package ode

import "testing"

func TestStatusCode(t *testing.T) {
	if StatusSuccess.Code() != 2 {
		t.Errorf("StatusSuccess.Code() = %d, want 2", StatusSuccess.Code())
	}
	if StatusIllegalInput.Code() != -3 {
		t.Errorf("StatusIllegalInput.Code() = %d, want -3", StatusIllegalInput.Code())
	}
}

func TestMethodString(t *testing.T) {
	if MethodAdams.String() != "adams" {
		t.Errorf("MethodAdams.String() = %q, want adams", MethodAdams.String())
	}
	if MethodBDF.String() != "bdf" {
		t.Errorf("MethodBDF.String() = %q, want bdf", MethodBDF.String())
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusSuccess:            "success",
		StatusExcessWork:         "excess work",
		StatusNonPositiveWeight:  "non-positive error weight",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}
