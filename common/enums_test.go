package common

import (
	"errors"
	"testing"
)

func TestChildrenPolicy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ChildrenPolicy
		keep    bool
		wantErr bool
	}{
		{name: "keep", input: "keep", want: ChildrenPolicyKeep, keep: true},
		{name: "remove", input: "remove", want: ChildrenPolicyRemove},
		{name: "capitalized", input: "Keep", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "hide", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseChildrenPolicy(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidChildrenPolicy) {
					t.Errorf("ParseChildrenPolicy(%q) error = %v, want ErrInvalidChildrenPolicy", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseChildrenPolicy(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseChildrenPolicy(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.Keep() != tt.keep {
				t.Errorf("Keep() = %v, want %v", got.Keep(), tt.keep)
			}
			if got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}

func TestChildrenPolicy_Text(t *testing.T) {
	var p ChildrenPolicy
	if err := p.UnmarshalText([]byte("remove")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if p != ChildrenPolicyRemove {
		t.Errorf("UnmarshalText() = %v, want remove", p)
	}
	text, err := p.MarshalText()
	if err != nil || string(text) != "remove" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
	if err := p.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText() expected error")
	}
	if ChildrenPolicy(7).IsValid() {
		t.Error("ChildrenPolicy(7) should be invalid")
	}
	if got := ChildrenPolicy(7).String(); got != "ChildrenPolicy(7)" {
		t.Errorf("String() = %q", got)
	}
}

func TestChildrenPolicyNames(t *testing.T) {
	names := ChildrenPolicyNames()
	if len(names) != 2 || names[0] != "keep" || names[1] != "remove" {
		t.Errorf("ChildrenPolicyNames() = %v", names)
	}
	names[0] = "changed"
	if ChildrenPolicyNames()[0] != "keep" {
		t.Error("ChildrenPolicyNames() returned shared slice")
	}
}
