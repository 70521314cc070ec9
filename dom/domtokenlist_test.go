package dom

import (
	"errors"
	"testing"
)

func TestDOMTokenListBasic(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.SetAttribute("class", "a b  a c")

	cl := el.TokenList()
	if cl.Length() != 3 {
		t.Errorf("Expected length 3, got %d", cl.Length())
	}
	if cl.Item(1) != "b" {
		t.Errorf("Expected item(1) 'b', got %q", cl.Item(1))
	}
	if cl.Item(5) != "" {
		t.Errorf("Expected empty item for out of range, got %q", cl.Item(5))
	}
	if !cl.Contains("c") || cl.Contains("d") {
		t.Error("Contains returned wrong result")
	}
}

func TestDOMTokenListAddRemove(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	cl := el.TokenList()

	if err := cl.Remove("x"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if el.HasAttribute("class") {
		t.Error("Removing from an absent attribute must not create it")
	}

	if err := cl.Add("x"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := cl.Add("x"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := cl.Add("y"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if el.ClassName() != "x y" {
		t.Errorf("Expected class 'x y', got %q", el.ClassName())
	}

	if err := cl.Remove("x"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if el.ClassName() != "y" {
		t.Errorf("Expected class 'y', got %q", el.ClassName())
	}

	if err := cl.Remove("y"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !el.HasAttribute("class") || el.ClassName() != "" {
		t.Errorf("Expected empty class attribute, got %q", el.ClassName())
	}
}

func TestDOMTokenListToggle(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	cl := el.TokenList()

	on, err := cl.Toggle("open")
	if err != nil || !on {
		t.Fatalf("Expected token added, got %v, %v", on, err)
	}
	on, err = cl.Toggle("open")
	if err != nil || on {
		t.Fatalf("Expected token removed, got %v, %v", on, err)
	}
}

func TestDOMTokenListValidation(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	cl := el.TokenList()

	tests := []struct {
		token string
		name  string
	}{
		{"", "SyntaxError"},
		{"a b", "InvalidCharacterError"},
		{"a\tb", "InvalidCharacterError"},
	}
	for _, tt := range tests {
		err := cl.Add(tt.token)
		var domErr *DOMError
		if !errors.As(err, &domErr) {
			t.Fatalf("Add(%q): expected *DOMError, got %v", tt.token, err)
		}
		if domErr.Name != tt.name {
			t.Errorf("Add(%q): expected %s, got %s", tt.token, tt.name, domErr.Name)
		}
		if cl.Contains(tt.token) {
			t.Errorf("Contains(%q) should be false for invalid tokens", tt.token)
		}
	}
}
