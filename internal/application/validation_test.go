package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
		wantMsg   string
	}{
		{
			name:      "valid value",
			fieldName: "fullName",
			value:     "Jane Smith",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "fullName",
			value:     "",
			wantErr:   true,
			wantMsg:   "fullName: full name is required",
		},
		{
			name:      "whitespace only",
			fieldName: "id",
			value:     "   ",
			wantErr:   true,
			wantMsg:   "id: ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		number    int
		wantIndex int
		wantErr   bool
	}{
		{1, 0, false},
		{12, 11, false},
		{0, 0, true},
		{13, 0, true},
		{-1, 0, true},
	}

	for _, tt := range tests {
		idx, err := ValidateQuestion(tt.number)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateQuestion(%d) error = %v, wantErr %v", tt.number, err, tt.wantErr)
			continue
		}
		if idx != tt.wantIndex {
			t.Errorf("ValidateQuestion(%d) = %d, want %d", tt.number, idx, tt.wantIndex)
		}
	}
}

func TestParseAnswerMask(t *testing.T) {
	tests := []struct {
		name    string
		mask    string
		want    string
		wantErr bool
	}{
		{"plain", "111000101000", "111 000 101 000", false},
		{"grouped", "111 000 101 001", "111 000 101 001", false},
		{"yes no", "yyyNNNyNyNNN", "111 000 101 000", false},
		{"too short", "111", "", true},
		{"bad character", "11100010100x", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnswerMask(tt.mask)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAnswerMask(%q) error = %v, wantErr %v", tt.mask, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if s := FormatAnswerMask(got); s != tt.want {
				t.Errorf("FormatAnswerMask(ParseAnswerMask(%q)) = %q, want %q", tt.mask, s, tt.want)
			}
		})
	}
}

func TestImportError_Is(t *testing.T) {
	err := &ImportError{Source: "x.json", Err: errors.New("bad")}
	if !errors.Is(err, ErrImportFailed) {
		t.Error("ImportError should match ErrImportFailed")
	}
	if err.Error() != "import from x.json failed: bad" {
		t.Errorf("Error() = %q", err.Error())
	}
}
