package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeDisplay(t *testing.T) {
	tests := []struct {
		name     string
		outcome  Outcome
		opts     Options
		wantOut  string
		wantDiag string
	}{
		{
			name:     "found",
			outcome:  Outcome{Root: "/photos", Path: "/photos/a.jpg", Found: true},
			wantOut:  "",
			wantDiag: "Chosen file: /photos/a.jpg\n",
		},
		{
			name:     "found bare",
			outcome:  Outcome{Root: "/photos", Path: "/photos/a.jpg", Found: true},
			opts:     Options{Bare: true},
			wantOut:  "/photos/a.jpg\n",
			wantDiag: "Chosen file: /photos/a.jpg\n",
		},
		{
			name:     "none found",
			outcome:  Outcome{Root: "/photos"},
			wantOut:  "",
			wantDiag: "No files with specified extensions found in /photos\n",
		},
		{
			name:     "none found bare prints nothing on stdout",
			outcome:  Outcome{Root: "/photos"},
			opts:     Options{Bare: true},
			wantOut:  "",
			wantDiag: "No files with specified extensions found in /photos\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, diag bytes.Buffer
			tt.outcome.Display(&out, &diag, tt.opts)

			assert.Equal(t, tt.wantOut, out.String())
			assert.Equal(t, tt.wantDiag, diag.String())
		})
	}
}

func TestOutcomeDisplayColor(t *testing.T) {
	var out, diag bytes.Buffer
	Outcome{Root: "/r", Path: "/r/a.png", Found: true}.Display(&out, &diag, Options{Bare: true, Color: true})

	assert.Contains(t, diag.String(), "\x1b[32m")
	assert.Contains(t, diag.String(), "/r/a.png")
	assert.Equal(t, "/r/a.png\n", out.String(), "bare output is never colored")
}
