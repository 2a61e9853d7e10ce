package assets

import (
	"errors"
	"testing"
)

func TestValidateTemplateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		// Valid names
		{
			name:    "default template",
			input:   "listtemplate.html",
			wantErr: nil,
		},
		{
			name:    "name with hyphen",
			input:   "my-list.html",
			wantErr: nil,
		},
		{
			name:    "name without extension",
			input:   "compact",
			wantErr: nil,
		},

		// Invalid names - empty
		{
			name:    "empty name",
			input:   "",
			wantErr: ErrInvalidTemplateName,
		},

		// Invalid names - path separators
		{
			name:    "forward slash",
			input:   "sub/list.html",
			wantErr: ErrInvalidTemplateName,
		},
		{
			name:    "backslash",
			input:   "sub\\list.html",
			wantErr: ErrInvalidTemplateName,
		},
		{
			name:    "null byte",
			input:   "list\x00.html",
			wantErr: ErrInvalidTemplateName,
		},

		// Invalid names - traversal and hidden files
		{
			name:    "parent directory",
			input:   "..",
			wantErr: ErrInvalidTemplateName,
		},
		{
			name:    "double dot inside",
			input:   "list..html",
			wantErr: ErrInvalidTemplateName,
		},
		{
			name:    "hidden file",
			input:   ".listtemplate.html",
			wantErr: ErrInvalidTemplateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateTemplateName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTemplateName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTemplateName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
