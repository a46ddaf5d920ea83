package journey

import "testing"

func flag(b bool) *bool { return &b }

// triStates are the three values a real-time actual flag can take.
var triStates = []*bool{nil, flag(false), flag(true)}

// allJourneys enumerates every combination of arrival/departure flags for
// journeys of one to three stops.
func allJourneys() [][]TrainStop {
	var out [][]TrainStop
	var build func(prefix []TrainStop, n int)
	build = func(prefix []TrainStop, n int) {
		if len(prefix) == n {
			out = append(out, append([]TrainStop(nil), prefix...))
			return
		}
		for _, arr := range triStates {
			for _, dep := range triStates {
				build(append(prefix, TrainStop{
					RealtimeArrivalActual:   arr,
					RealtimeDepartureActual: dep,
				}), n)
			}
		}
	}
	for n := 1; n <= 3; n++ {
		build(nil, n)
	}
	return out
}

func TestClassifyScenarios(t *testing.T) {
	tests := []struct {
		name  string
		stops []TrainStop
		index int
		want  Status
	}{
		{
			name:  "origin departed",
			stops: []TrainStop{{RealtimeDepartureActual: flag(true)}},
			want:  Passed,
		},
		{
			name:  "origin waiting",
			stops: []TrainStop{{RealtimeDepartureActual: flag(false)}},
			want:  AtStation,
		},
		{
			name:  "origin without real-time",
			stops: []TrainStop{{}},
			want:  Unknown,
		},
		{
			name: "intermediate called and left",
			stops: []TrainStop{
				{RealtimeDepartureActual: flag(true)},
				{RealtimeArrivalActual: flag(true), RealtimeDepartureActual: flag(true)},
			},
			index: 1,
			want:  Passed,
		},
		{
			name: "intermediate dwelling",
			stops: []TrainStop{
				{RealtimeDepartureActual: flag(true)},
				{RealtimeArrivalActual: flag(true), RealtimeDepartureActual: flag(false)},
			},
			index: 1,
			want:  AtStation,
		},
		{
			name: "destination ahead of a running train",
			stops: []TrainStop{
				{RealtimeDepartureActual: flag(true)},
				{RealtimeArrivalActual: flag(false)},
				{},
			},
			index: 2,
			want:  EnRoute,
		},
		{
			name: "nothing has departed",
			stops: []TrainStop{
				{RealtimeDepartureActual: flag(false)},
				{RealtimeArrivalActual: flag(false), RealtimeDepartureActual: flag(false)},
			},
			index: 1,
			want:  Unknown,
		},
		{
			name:  "index out of range",
			stops: []TrainStop{{RealtimeDepartureActual: flag(true)}},
			index: 3,
			want:  Unknown,
		},
		{
			name:  "negative index",
			stops: []TrainStop{{RealtimeDepartureActual: flag(true)}},
			index: -1,
			want:  Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.stops, tt.index); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyOriginIgnoresOtherStops(t *testing.T) {
	for _, stops := range allJourneys() {
		alone := Classify(stops[:1], 0)
		if got := Classify(stops, 0); got != alone {
			t.Fatalf("origin status %q changed to %q by later stops %+v", alone, got, stops)
		}
	}
}

func TestClassifyArrivedAndDepartedIsPassed(t *testing.T) {
	for _, stops := range allJourneys() {
		for i := 1; i < len(stops); i++ {
			s := stops[i]
			if isTrue(s.RealtimeArrivalActual) && isTrue(s.RealtimeDepartureActual) {
				if got := Classify(stops, i); got != Passed {
					t.Fatalf("stop %d = %q, want Passed", i, got)
				}
			}
		}
	}
}

func TestClassifyNotArrived(t *testing.T) {
	for _, stops := range allJourneys() {
		departed := false
		for _, s := range stops {
			if isTrue(s.RealtimeDepartureActual) {
				departed = true
			}
		}

		for i := 1; i < len(stops); i++ {
			if isTrue(stops[i].RealtimeArrivalActual) {
				continue
			}
			want := Unknown
			if departed {
				want = EnRoute
			}
			if got := Classify(stops, i); got != want {
				t.Fatalf("stop %d of %+v = %q, want %q", i, stops, got, want)
			}
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	for _, stops := range allJourneys() {
		first := Statuses(stops)
		second := Statuses(stops)
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("stop %d classified %q then %q", i, first[i], second[i])
			}
		}
	}
}

func TestStatusString(t *testing.T) {
	want := map[Status]string{
		Passed:    "Passed",
		AtStation: "At Station",
		EnRoute:   "En Route",
		Unknown:   "",
	}
	for status, s := range want {
		if status.String() != s {
			t.Errorf("%d.String() = %q, want %q", int(status), status.String(), s)
		}
	}
}
