package cli

import "testing"

func TestValidateModelName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "post", false},
		{"camel case", "blogPost", false},
		{"user is allowed", "user", false},
		{"empty", "", true},
		{"leading digit", "1post", true},
		{"pascal case", "Post", true},
		{"snake case", "blog_post", true},
		{"reserved new", "new", true},
		{"reserved api", "api", true},
		{"reserved page", "page", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateModelName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateModelName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
