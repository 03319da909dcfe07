package tui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiagnostics(t *testing.T) {
	type tc struct {
		size      int
		reports   []string
		want      []string
		wantTotal int
	}

	tests := map[string]tc{
		"empty": {
			size:      3,
			want:      []string{},
			wantTotal: 0,
		},
		"below capacity": {
			size:      3,
			reports:   []string{"a", "b"},
			want:      []string{"a", "b"},
			wantTotal: 2,
		},
		"exactly full": {
			size:      3,
			reports:   []string{"a", "b", "c"},
			want:      []string{"a", "b", "c"},
			wantTotal: 3,
		},
		"oldest evicted": {
			size:      3,
			reports:   []string{"a", "b", "c", "d", "e"},
			want:      []string{"c", "d", "e"},
			wantTotal: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d := NewDiagnostics(tt.size)
			for _, r := range tt.reports {
				d.Report(errors.New(r))
			}
			got := []string{}
			for _, err := range d.Errors() {
				got = append(got, err.Error())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Errors() mismatch (-want +got):\n%s", diff)
			}
			if d.Total() != tt.wantTotal {
				t.Errorf("Total() = %d, want %d", d.Total(), tt.wantTotal)
			}
		})
	}
}

func TestDiagnostics_NilAndClear(t *testing.T) {
	d := NewDiagnostics(0)
	d.Report(nil, errors.New("x"), nil)
	if d.Total() != 1 {
		t.Errorf("Total() = %d, want nil errors ignored", d.Total())
	}
	d.Clear()
	if len(d.Errors()) != 0 || d.Total() != 0 {
		t.Errorf("after Clear: %v, total %d", d.Errors(), d.Total())
	}
}
